package pg

import (
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

// The authentications table is the refresh-token allow-list: the raw token
// string is stored verbatim and looked up by exact match.

func (s *Storage) SaveRefreshToken(token string) error {
	_, err := s.db.Exec(`INSERT INTO authentications (token) VALUES ($1)`, token)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (s *Storage) FindRefreshToken(token string) error {
	var found string
	err := s.db.QueryRow(`SELECT token FROM authentications WHERE token = $1`, token).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.InvariantError{Message: "refresh token not found in database"}
		}
		return fmt.Errorf("failed to find refresh token: %w", err)
	}
	return nil
}

func (s *Storage) DeleteRefreshToken(token string) error {
	_, err := s.db.Exec(`DELETE FROM authentications WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
