package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type ReplyService interface {
	Create(payload domain.CreateReply, threadId, commentId, owner string) (domain.CreatedReply, error)
	Delete(threadId, commentId, replyId, owner string) error
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

// ReplyStorage is the reply repository contract.
type ReplyStorage interface {
	CreateReply(payload domain.CreateReply, commentId, owner string) (domain.CreatedReply, error)
	// CheckReply fails with NotFound if the reply is absent or soft-deleted.
	CheckReply(id string) error
	// RepliesByComments fetches replies for a whole set of comment ids in
	// one call, ordered by creation time ascending.
	RepliesByComments(commentIds []string) ([]domain.ReplyRecord, error)
	VerifyReplyOwner(replyId, owner string) error
	DeleteReply(replyId string) error
}

type UnimplementedReplyStorage struct{}

func (UnimplementedReplyStorage) CreateReply(domain.CreateReply, string, string) (domain.CreatedReply, error) {
	return domain.CreatedReply{}, internal_errors.ErrNotImplemented
}
func (UnimplementedReplyStorage) CheckReply(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedReplyStorage) RepliesByComments([]string) ([]domain.ReplyRecord, error) {
	return nil, internal_errors.ErrNotImplemented
}
func (UnimplementedReplyStorage) VerifyReplyOwner(string, string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedReplyStorage) DeleteReply(string) error {
	return internal_errors.ErrNotImplemented
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Reply {
	return &Reply{threads, comments, replies}
}

func (s *Reply) Create(payload domain.CreateReply, threadId, commentId, owner string) (domain.CreatedReply, error) {
	if err := payload.Validate(); err != nil {
		return domain.CreatedReply{}, err
	}
	if err := s.threads.CheckThread(threadId); err != nil {
		return domain.CreatedReply{}, err
	}
	if err := s.comments.CheckComment(commentId); err != nil {
		return domain.CreatedReply{}, err
	}
	return s.replies.CreateReply(payload, commentId, owner)
}

// Delete walks thread -> comment -> reply -> ownership, failing on the
// first missing link.
func (s *Reply) Delete(threadId, commentId, replyId, owner string) error {
	if err := s.threads.CheckThread(threadId); err != nil {
		return err
	}
	if err := s.comments.CheckComment(commentId); err != nil {
		return err
	}
	if err := s.replies.CheckReply(replyId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(replyId, owner); err != nil {
		return err
	}
	return s.replies.DeleteReply(replyId)
}
