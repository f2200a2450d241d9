package pg

import "fmt"

// Fixture helpers for tests. Soft deletion is one-way in the API; the
// restore path exists only so test fixtures can reset tombstoned rows.

func (s *Storage) RestoreComment(commentId string) error {
	_, err := s.db.Exec(`UPDATE comments SET is_delete = FALSE WHERE id = $1`, commentId)
	if err != nil {
		return fmt.Errorf("failed to restore comment: %w", err)
	}
	return nil
}

func (s *Storage) RestoreReply(replyId string) error {
	_, err := s.db.Exec(`UPDATE replies SET is_delete = FALSE WHERE id = $1`, replyId)
	if err != nil {
		return fmt.Errorf("failed to restore reply: %w", err)
	}
	return nil
}
