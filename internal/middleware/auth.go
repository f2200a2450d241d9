// Package middleware holds the HTTP middleware: bearer-token authentication
// and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/jwt"
	"github.com/goforum-dev/goforum/internal/utils"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

// tokenDecoder is the slice of jwt.Manager the middleware needs.
type tokenDecoder interface {
	DecodeAccessToken(tokenStr string) (domain.TokenClaims, error)
}

var _ tokenDecoder = (*jwt.Manager)(nil)

// NeedAuth requires a valid "Authorization: Bearer <token>" header and puts
// the decoded claims into the request context.
func NeedAuth(decoder tokenDecoder) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.WriteErrorAndStatusCode(w, &internal_errors.AuthenticationError{Message: "missing authentication"})
				return
			}
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				utils.WriteErrorAndStatusCode(w, &internal_errors.AuthenticationError{Message: "missing authentication"})
				return
			}

			claims, err := decoder.DecodeAccessToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserFromContext retrieves the claims stored by NeedAuth. The zero value
// means the request never passed through the middleware.
func GetUserFromContext(r *http.Request) domain.TokenClaims {
	claims, ok := r.Context().Value(userClaimsKey).(domain.TokenClaims)
	if !ok {
		return domain.TokenClaims{}
	}
	return claims
}
