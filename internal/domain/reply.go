package domain

import (
	"time"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type CreateReply struct {
	Content string
}

func (p CreateReply) Validate() error {
	if p.Content == "" {
		return &internal_errors.ValidationError{Message: "content is required"}
	}
	return nil
}

type CreatedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedReply(id, content, owner string) (CreatedReply, error) {
	if id == "" || content == "" || owner == "" {
		return CreatedReply{}, &internal_errors.ValidationError{Message: "created reply row is incomplete"}
	}
	return CreatedReply{Id: id, Content: content, Owner: owner}, nil
}

// ReplyRecord carries CommentId so detail assembly can bucket replies under
// the comment they belong to.
type ReplyRecord struct {
	Id        string
	CommentId string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}
