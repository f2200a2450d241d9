// Package pg implements the repository contracts on PostgreSQL.
package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/goforum-dev/goforum/internal/config"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

// Querier abstracts over *sql.DB and *sql.Tx so logic can run in both
// transactional and non-transactional contexts.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type Storage struct {
	db    *sql.DB
	newId func() string
}

// New connects to Postgres and verifies the connection. newId is the
// identifier generator collaborator; per-entity prefixes are added here, at
// the repository boundary.
func New(cfg config.Pg, newId func() string) (*Storage, error) {
	sslmode := cfg.Sslmode
	if sslmode == "" {
		sslmode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Storage{db: db, newId: newId}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// uniqueViolation reports whether err is a Postgres unique-constraint
// violation. The store's constraint is the source of truth for uniqueness;
// a violation surfaces as a domain invariant, never a raw driver error.
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func mapUniqueViolation(err error, message string) error {
	if uniqueViolation(err) {
		return &internal_errors.InvariantError{Message: message}
	}
	return err
}
