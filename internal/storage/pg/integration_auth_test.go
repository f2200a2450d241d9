package pg

import (
	"testing"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/utils"
)

func TestRefreshTokenAllowList(t *testing.T) {
	token := "refresh-" + utils.NewId()

	if err := storage.FindRefreshToken(token); !internal_errors.Is[*internal_errors.InvariantError](err) {
		t.Errorf("expected InvariantError before save, got %v", err)
	}

	if err := storage.SaveRefreshToken(token); err != nil {
		t.Fatalf("SaveRefreshToken failed: %v", err)
	}
	if err := storage.FindRefreshToken(token); err != nil {
		t.Errorf("expected token to be found after save, got %v", err)
	}

	// Lookup is exact match on the stored string.
	if err := storage.FindRefreshToken(token + "x"); !internal_errors.Is[*internal_errors.InvariantError](err) {
		t.Errorf("expected InvariantError for mismatched token, got %v", err)
	}

	if err := storage.DeleteRefreshToken(token); err != nil {
		t.Fatalf("DeleteRefreshToken failed: %v", err)
	}
	if err := storage.FindRefreshToken(token); !internal_errors.Is[*internal_errors.InvariantError](err) {
		t.Errorf("expected InvariantError after delete, got %v", err)
	}

	// Deleting an absent token is a no-op.
	if err := storage.DeleteRefreshToken(token); err != nil {
		t.Errorf("repeated DeleteRefreshToken failed: %v", err)
	}
}
