// Package errors defines the domain error taxonomy. Every kind carries its
// own HTTP status code so handlers can translate with a single call.
package errors

import (
	"errors"
	"net/http"
)

// ErrNotImplemented is returned by contract methods that have no concrete
// backing implementation. Conformance tests rely on it.
var ErrNotImplemented = errors.New("not implemented")

// ValidationError: malformed or missing input, raised at entity construction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// NotFoundError: referenced thread/comment/reply absent or soft-deleted.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string   { return e.Message }
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// AuthorizationError: ownership mismatch on a mutation.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string   { return e.Message }
func (e *AuthorizationError) StatusCode() int { return http.StatusForbidden }

// AuthenticationError: bad credentials or bad access token.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string   { return e.Message }
func (e *AuthenticationError) StatusCode() int { return http.StatusUnauthorized }

// InvariantError: business-rule violation (duplicate username,
// invalid/absent refresh token, uniqueness violation from the store).
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string   { return e.Message }
func (e *InvariantError) StatusCode() int { return http.StatusBadRequest }

type statusCoder interface {
	StatusCode() int
}

// StatusCode maps a domain error to its HTTP status. Anything outside the
// taxonomy is an unclassified fault and maps to 500.
func StatusCode(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// Is reports whether err is an instance of the custom error type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
