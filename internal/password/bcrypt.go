// Package password implements the hashing collaborator on top of bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/logger"
)

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hashed), nil
}

// Compare fails with an AuthenticationError on mismatch.
func (h *BcryptHasher) Compare(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return &internal_errors.AuthenticationError{Message: "wrong credentials"}
	}
	return nil
}
