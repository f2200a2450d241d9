package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type ThreadService interface {
	Create(payload domain.CreateThread, owner string) (domain.CreatedThread, error)
	GetDetail(threadId string) (domain.DetailThread, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

// ThreadStorage is the thread repository contract.
type ThreadStorage interface {
	CreateThread(payload domain.CreateThread, owner string) (domain.CreatedThread, error)
	// CheckThread fails with NotFound if the thread does not exist.
	CheckThread(id string) error
	// DetailThread returns the flat thread row with the author username
	// joined in; NotFound if absent.
	DetailThread(id string) (domain.ThreadRecord, error)
}

// UnimplementedThreadStorage fails every contract method. Embed it in
// partial implementations and mocks.
type UnimplementedThreadStorage struct{}

func (UnimplementedThreadStorage) CreateThread(domain.CreateThread, string) (domain.CreatedThread, error) {
	return domain.CreatedThread{}, internal_errors.ErrNotImplemented
}
func (UnimplementedThreadStorage) CheckThread(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedThreadStorage) DetailThread(string) (domain.ThreadRecord, error) {
	return domain.ThreadRecord{}, internal_errors.ErrNotImplemented
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Thread {
	return &Thread{threads, comments, replies}
}

func (s *Thread) Create(payload domain.CreateThread, owner string) (domain.CreatedThread, error) {
	if err := payload.Validate(); err != nil {
		return domain.CreatedThread{}, err
	}
	return s.threads.CreateThread(payload, owner)
}

// GetDetail assembles the full comment/reply tree for a thread.
//
// Soft-deleted comments and replies stay in the tree, in creation order,
// with their content replaced by a placeholder. Deleted comments keep their
// replies: the batched reply fetch therefore runs over every comment id,
// deleted ones included.
func (s *Thread) GetDetail(threadId string) (domain.DetailThread, error) {
	rec, err := s.threads.DetailThread(threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentRecs, err := s.comments.CommentsByThread(threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentIds := make([]string, 0, len(commentRecs))
	for _, c := range commentRecs {
		commentIds = append(commentIds, c.Id)
	}

	replyRecs, err := s.replies.RepliesByComments(commentIds)
	if err != nil {
		return domain.DetailThread{}, err
	}

	// Bucket replies per comment, preserving the storage order within each
	// bucket.
	repliesByComment := make(map[string][]domain.ReplyDetail, len(commentRecs))
	for _, r := range replyRecs {
		content := r.Content
		if r.IsDeleted {
			content = domain.DeletedReplyPlaceholder
		}
		node, err := domain.NewReplyDetail(r.Id, r.Username, r.Date, content)
		if err != nil {
			return domain.DetailThread{}, err
		}
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], node)
	}

	comments := make([]domain.CommentDetail, 0, len(commentRecs))
	for _, c := range commentRecs {
		content := c.Content
		if c.IsDeleted {
			content = domain.DeletedCommentPlaceholder
		}
		node, err := domain.NewCommentDetail(c.Id, c.Username, c.Date, content, c.LikeCount, repliesByComment[c.Id])
		if err != nil {
			return domain.DetailThread{}, err
		}
		comments = append(comments, node)
	}

	return domain.NewDetailThread(rec, comments)
}
