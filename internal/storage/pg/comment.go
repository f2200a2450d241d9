package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

func (s *Storage) CreateComment(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error) {
	id := "comment-" + s.newId()

	var rid, rcontent, rowner string
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, thread_id, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, payload.Content, threadId, owner).Scan(&rid, &rcontent, &rowner)
	if err != nil {
		return domain.CreatedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.NewCreatedComment(rid, rcontent, rowner)
}

// CheckComment treats a soft-deleted comment as not found: tombstoned rows
// take no new interactions.
func (s *Storage) CheckComment(id string) error {
	var isDeleted bool
	err := s.db.QueryRow(`SELECT is_delete FROM comments WHERE id = $1`, id).Scan(&isDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "comment not found"}
		}
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if isDeleted {
		return &internal_errors.NotFoundError{Message: "comment not found"}
	}
	return nil
}

func (s *Storage) CommentsByThread(threadId string) ([]domain.CommentRecord, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, c.created_at, c.content, COUNT(lc.id) AS like_count, c.is_delete
        FROM comments c
        JOIN users u ON c.owner = u.id
        LEFT JOIN liked_comments lc ON c.id = lc.comment_id
        WHERE c.thread_id = $1
        GROUP BY c.id, u.username
        ORDER BY c.created_at ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var records []domain.CommentRecord
	for rows.Next() {
		var rec domain.CommentRecord
		if err := rows.Scan(&rec.Id, &rec.Username, &rec.Date, &rec.Content, &rec.LikeCount, &rec.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

func (s *Storage) VerifyCommentOwner(commentId, owner string) error {
	var exists bool
	err := s.db.QueryRow(`
        SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND owner = $2)
    `, commentId, owner).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if !exists {
		return &internal_errors.AuthorizationError{Message: "access denied"}
	}
	return nil
}

func (s *Storage) HasLike(commentId, userId string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
        SELECT EXISTS (SELECT 1 FROM liked_comments WHERE user_id = $1 AND comment_id = $2)
    `, userId, commentId).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// LikeComment relies on the (user_id, comment_id) uniqueness constraint: a
// racing duplicate insert degrades to a no-op.
func (s *Storage) LikeComment(commentId, userId string) error {
	id := "liked-comment-" + s.newId()
	_, err := s.db.Exec(`
        INSERT INTO liked_comments (id, user_id, comment_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, comment_id) DO NOTHING
    `, id, userId, commentId)
	if err != nil {
		return fmt.Errorf("failed to like comment: %w", err)
	}
	return nil
}

func (s *Storage) UnlikeComment(commentId, userId string) error {
	_, err := s.db.Exec(`
        DELETE FROM liked_comments WHERE comment_id = $1 AND user_id = $2
    `, commentId, userId)
	if err != nil {
		return fmt.Errorf("failed to unlike comment: %w", err)
	}
	return nil
}

// DeleteComment only flips the tombstone flag; the row stays addressable so
// reply chains keep resolving.
func (s *Storage) DeleteComment(commentId string) error {
	_, err := s.db.Exec(`UPDATE comments SET is_delete = TRUE WHERE id = $1`, commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
