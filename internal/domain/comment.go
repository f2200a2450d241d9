package domain

import (
	"time"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type CreateComment struct {
	Content string
}

func (p CreateComment) Validate() error {
	if p.Content == "" {
		return &internal_errors.ValidationError{Message: "content is required"}
	}
	return nil
}

type CreatedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedComment(id, content, owner string) (CreatedComment, error) {
	if id == "" || content == "" || owner == "" {
		return CreatedComment{}, &internal_errors.ValidationError{Message: "created comment row is incomplete"}
	}
	return CreatedComment{Id: id, Content: content, Owner: owner}, nil
}

// CommentRecord is a raw storage row: content is NOT masked yet and the
// is_delete flag travels up so the view layer can decide.
type CommentRecord struct {
	Id        string
	Username  string
	Date      time.Time
	Content   string
	LikeCount int
	IsDeleted bool
}
