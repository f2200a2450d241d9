package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

func (s *Storage) CheckUsernameAvailable(username string) error {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return &internal_errors.InvariantError{Message: "username not available"}
	}
	return nil
}

// SaveUser expects payload.Password to hold the hash already. A racing
// duplicate past CheckUsernameAvailable is caught by the unique constraint.
func (s *Storage) SaveUser(payload domain.RegisterUser) (domain.RegisteredUser, error) {
	id := "user-" + s.newId()

	var rid, rusername, rfullname string
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, payload.Username, payload.Password, payload.Fullname).Scan(&rid, &rusername, &rfullname)
	if err != nil {
		if mapped := mapUniqueViolation(err, "username not available"); mapped != err {
			return domain.RegisteredUser{}, mapped
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return domain.NewRegisteredUser(rid, rusername, rfullname)
}

func (s *Storage) UserCredential(username string) (domain.CredentialUser, error) {
	var id, password string
	err := s.db.QueryRow(`SELECT id, password FROM users WHERE username = $1`, username).Scan(&id, &password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CredentialUser{}, &internal_errors.NotFoundError{Message: "username not found"}
		}
		return domain.CredentialUser{}, fmt.Errorf("failed to fetch credential: %w", err)
	}

	return domain.NewCredentialUser(id, password)
}
