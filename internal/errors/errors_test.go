package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ValidationError{Message: "bad input"}, http.StatusBadRequest},
		{&NotFoundError{Message: "thread not found"}, http.StatusNotFound},
		{&AuthorizationError{Message: "access denied"}, http.StatusForbidden},
		{&AuthenticationError{Message: "wrong password"}, http.StatusUnauthorized},
		{&InvariantError{Message: "username not available"}, http.StatusBadRequest},
		{errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := StatusCode(c.err); got != c.want {
			t.Errorf("StatusCode(%v) = %d, expected %d", c.err, got, c.want)
		}
	}
}

func TestStatusCodeWrapped(t *testing.T) {
	err := fmt.Errorf("delete comment: %w", &AuthorizationError{Message: "access denied"})
	if got := StatusCode(err); got != http.StatusForbidden {
		t.Errorf("StatusCode(wrapped) = %d, expected %d", got, http.StatusForbidden)
	}
}

func TestIs(t *testing.T) {
	err := error(&NotFoundError{Message: "comment not found"})

	if !Is[*NotFoundError](err) {
		t.Error("expected Is[*NotFoundError] to be true")
	}
	if Is[*ValidationError](err) {
		t.Error("expected Is[*ValidationError] to be false")
	}
	if Is[*NotFoundError](errors.New("plain")) {
		t.Error("expected plain error not to match")
	}
}
