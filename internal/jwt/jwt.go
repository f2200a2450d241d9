// Package jwt implements the token collaborator: HS256 access and refresh
// tokens with separate signing keys and lifetimes.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type Manager struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{accessKey, refreshKey, accessTTL, refreshTTL}
}

func (m *Manager) newToken(claims domain.TokenClaims, key string, ttl time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"id":       claims.Id,
		"username": claims.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(key))
}

func (m *Manager) NewAccessToken(claims domain.TokenClaims) (string, error) {
	return m.newToken(claims, m.accessKey, m.accessTTL)
}

func (m *Manager) NewRefreshToken(claims domain.TokenClaims) (string, error) {
	return m.newToken(claims, m.refreshKey, m.refreshTTL)
}

func (m *Manager) decode(tokenStr, key string) (domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return domain.TokenClaims{}, jwt.ErrTokenSignatureInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenClaims{}, jwt.ErrTokenInvalidClaims
	}
	id, _ := mapClaims["id"].(string)
	username, _ := mapClaims["username"].(string)
	if id == "" || username == "" {
		return domain.TokenClaims{}, jwt.ErrTokenInvalidClaims
	}
	return domain.TokenClaims{Id: id, Username: username}, nil
}

// DecodeAccessToken fails with an AuthenticationError: a bad access token
// means the caller is not signed in.
func (m *Manager) DecodeAccessToken(tokenStr string) (domain.TokenClaims, error) {
	claims, err := m.decode(tokenStr, m.accessKey)
	if err != nil {
		return domain.TokenClaims{}, &internal_errors.AuthenticationError{Message: "access token is invalid"}
	}
	return claims, nil
}

// DecodeRefreshToken fails with an InvariantError: a bad refresh token is a
// business-rule violation of the refresh flow, not a sign-in failure.
func (m *Manager) DecodeRefreshToken(tokenStr string) (domain.TokenClaims, error) {
	claims, err := m.decode(tokenStr, m.refreshKey)
	if err != nil {
		return domain.TokenClaims{}, &internal_errors.InvariantError{Message: "refresh token is invalid"}
	}
	return claims, nil
}
