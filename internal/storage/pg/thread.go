package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

func (s *Storage) CreateThread(payload domain.CreateThread, owner string) (domain.CreatedThread, error) {
	id := "thread-" + s.newId()

	var rid, rtitle, rowner string
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, payload.Title, payload.Body, owner).Scan(&rid, &rtitle, &rowner)
	if err != nil {
		return domain.CreatedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.NewCreatedThread(rid, rtitle, rowner)
}

func (s *Storage) CheckThread(id string) error {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "thread not found"}
	}
	return nil
}

func (s *Storage) DetailThread(id string) (domain.ThreadRecord, error) {
	var rec domain.ThreadRecord
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, t.created_at, u.username
        FROM threads t
        JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, id).Scan(&rec.Id, &rec.Title, &rec.Body, &rec.Date, &rec.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, &internal_errors.NotFoundError{Message: "thread not found"}
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to fetch thread detail: %w", err)
	}
	return rec, nil
}
