package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type CommentService interface {
	Create(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error)
	Delete(threadId, commentId, owner string) error
	ToggleLike(threadId, commentId, userId string) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

// CommentStorage is the comment repository contract.
type CommentStorage interface {
	CreateComment(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error)
	// CheckComment fails with NotFound if the comment is absent OR
	// soft-deleted: a deleted comment takes no new interactions.
	CheckComment(id string) error
	// CommentsByThread returns every comment of the thread, soft-deleted
	// included, ordered by creation time ascending, each row carrying the
	// author username and like count.
	CommentsByThread(threadId string) ([]domain.CommentRecord, error)
	// VerifyCommentOwner fails with an AuthorizationError unless owner
	// matches the comment's owner.
	VerifyCommentOwner(commentId, owner string) error
	HasLike(commentId, userId string) (bool, error)
	LikeComment(commentId, userId string) error
	UnlikeComment(commentId, userId string) error
	// DeleteComment flips is_delete; the row stays addressable.
	DeleteComment(commentId string) error
}

type UnimplementedCommentStorage struct{}

func (UnimplementedCommentStorage) CreateComment(domain.CreateComment, string, string) (domain.CreatedComment, error) {
	return domain.CreatedComment{}, internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) CheckComment(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) CommentsByThread(string) ([]domain.CommentRecord, error) {
	return nil, internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) VerifyCommentOwner(string, string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) HasLike(string, string) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) LikeComment(string, string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) UnlikeComment(string, string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedCommentStorage) DeleteComment(string) error {
	return internal_errors.ErrNotImplemented
}

func NewComment(threads ThreadStorage, comments CommentStorage) *Comment {
	return &Comment{threads, comments}
}

func (s *Comment) Create(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error) {
	if err := payload.Validate(); err != nil {
		return domain.CreatedComment{}, err
	}
	if err := s.threads.CheckThread(threadId); err != nil {
		return domain.CreatedComment{}, err
	}
	return s.comments.CreateComment(payload, threadId, owner)
}

// Delete checks existence before ownership, so a caller probing with a
// foreign id cannot distinguish "not found" from "not yours".
func (s *Comment) Delete(threadId, commentId, owner string) error {
	if err := s.threads.CheckThread(threadId); err != nil {
		return err
	}
	if err := s.comments.CheckComment(commentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(commentId, owner); err != nil {
		return err
	}
	return s.comments.DeleteComment(commentId)
}

// ToggleLike is the single entry point for liking: insert-if-absent,
// delete-if-present, never both.
func (s *Comment) ToggleLike(threadId, commentId, userId string) error {
	if err := s.threads.CheckThread(threadId); err != nil {
		return err
	}
	if err := s.comments.CheckComment(commentId); err != nil {
		return err
	}
	liked, err := s.comments.HasLike(commentId, userId)
	if err != nil {
		return err
	}
	if liked {
		return s.comments.UnlikeComment(commentId, userId)
	}
	return s.comments.LikeComment(commentId, userId)
}
