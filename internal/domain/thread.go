package domain

import (
	"time"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

// Content shown in place of soft-deleted rows when a detail view is built.
// These are wire-level constants: existing API consumers match on them.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// CreateThread moves thru layers: handler -> service -> storage.
type CreateThread struct {
	Title string
	Body  string
}

func (p CreateThread) Validate() error {
	if p.Title == "" {
		return &internal_errors.ValidationError{Message: "title is required"}
	}
	if p.Body == "" {
		return &internal_errors.ValidationError{Message: "body is required"}
	}
	return nil
}

// CreatedThread is the persisted-row echo returned after a successful insert.
type CreatedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// NewCreatedThread validates the shape of a row coming back from storage.
// A malformed persisted row surfaces as a ValidationError.
func NewCreatedThread(id, title, owner string) (CreatedThread, error) {
	if id == "" || title == "" || owner == "" {
		return CreatedThread{}, &internal_errors.ValidationError{Message: "created thread row is incomplete"}
	}
	return CreatedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadRecord is the flat thread row with joined author username.
type ThreadRecord struct {
	Id       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ReplyDetail is a single reply node in the assembled tree, already masked.
type ReplyDetail struct {
	Id       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

func NewReplyDetail(id, username string, date time.Time, content string) (ReplyDetail, error) {
	if id == "" || username == "" || content == "" || date.IsZero() {
		return ReplyDetail{}, &internal_errors.ValidationError{Message: "reply row is incomplete"}
	}
	return ReplyDetail{Id: id, Username: username, Date: date, Content: content}, nil
}

// CommentDetail is a comment node carrying its like count and the ordered
// replies that belong to it.
type CommentDetail struct {
	Id        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

func NewCommentDetail(id, username string, date time.Time, content string, likeCount int, replies []ReplyDetail) (CommentDetail, error) {
	if id == "" || username == "" || content == "" || date.IsZero() {
		return CommentDetail{}, &internal_errors.ValidationError{Message: "comment row is incomplete"}
	}
	if likeCount < 0 {
		return CommentDetail{}, &internal_errors.ValidationError{Message: "comment like count is negative"}
	}
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{Id: id, Username: username, Date: date, Content: content, LikeCount: likeCount, Replies: replies}, nil
}

// DetailThread is the outward view of a thread with its full comment tree.
type DetailThread struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

func NewDetailThread(rec ThreadRecord, comments []CommentDetail) (DetailThread, error) {
	if rec.Id == "" || rec.Title == "" || rec.Body == "" || rec.Username == "" || rec.Date.IsZero() {
		return DetailThread{}, &internal_errors.ValidationError{Message: "thread row is incomplete"}
	}
	if comments == nil {
		comments = []CommentDetail{}
	}
	return DetailThread{
		Id:       rec.Id,
		Title:    rec.Title,
		Body:     rec.Body,
		Date:     rec.Date,
		Username: rec.Username,
		Comments: comments,
	}, nil
}
