package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

func (s *Storage) CreateReply(payload domain.CreateReply, commentId, owner string) (domain.CreatedReply, error) {
	id := "reply-" + s.newId()

	var rid, rcontent, rowner string
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, comment_id, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, payload.Content, commentId, owner).Scan(&rid, &rcontent, &rowner)
	if err != nil {
		return domain.CreatedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	return domain.NewCreatedReply(rid, rcontent, rowner)
}

func (s *Storage) CheckReply(id string) error {
	var isDeleted bool
	err := s.db.QueryRow(`SELECT is_delete FROM replies WHERE id = $1`, id).Scan(&isDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "reply not found"}
		}
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if isDeleted {
		return &internal_errors.NotFoundError{Message: "reply not found"}
	}
	return nil
}

// RepliesByComments fetches replies for the whole comment id set in one
// query. comment_id travels up so the service can bucket per comment.
func (s *Storage) RepliesByComments(commentIds []string) ([]domain.ReplyRecord, error) {
	if len(commentIds) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
        SELECT r.id, r.comment_id, u.username, r.created_at, r.content, r.is_delete
        FROM replies r
        JOIN users u ON r.owner = u.id
        WHERE r.comment_id = ANY($1)
        ORDER BY r.created_at ASC
    `, pq.Array(commentIds))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var records []domain.ReplyRecord
	for rows.Next() {
		var rec domain.ReplyRecord
		if err := rows.Scan(&rec.Id, &rec.CommentId, &rec.Username, &rec.Date, &rec.Content, &rec.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

func (s *Storage) VerifyReplyOwner(replyId, owner string) error {
	var exists bool
	err := s.db.QueryRow(`
        SELECT EXISTS (SELECT 1 FROM replies WHERE id = $1 AND owner = $2)
    `, replyId, owner).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	if !exists {
		return &internal_errors.AuthorizationError{Message: "access denied"}
	}
	return nil
}

func (s *Storage) DeleteReply(replyId string) error {
	_, err := s.db.Exec(`UPDATE replies SET is_delete = TRUE WHERE id = $1`, replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return nil
}
