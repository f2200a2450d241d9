package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type AuthService interface {
	GenerateToken(claims domain.TokenClaims) (domain.TokenPair, error)
	RefreshAccessToken(payload domain.RefreshToken) (string, error)
	RemoveRefreshToken(payload domain.RefreshToken) error
}

type Auth struct {
	storage AuthStorage
	tokens  TokenManager
}

// AuthStorage is the refresh-token allow-list contract. Tokens are stored
// verbatim: presence of the exact string means the token is still valid.
type AuthStorage interface {
	SaveRefreshToken(token string) error
	// FindRefreshToken fails with an InvariantError if the literal token
	// string is not in the store.
	FindRefreshToken(token string) error
	DeleteRefreshToken(token string) error
}

// TokenManager is the external token collaborator.
type TokenManager interface {
	NewAccessToken(claims domain.TokenClaims) (string, error)
	NewRefreshToken(claims domain.TokenClaims) (string, error)
	// DecodeRefreshToken fails with an InvariantError on bad signature or
	// expiry and recovers the original claims otherwise.
	DecodeRefreshToken(token string) (domain.TokenClaims, error)
}

type UnimplementedAuthStorage struct{}

func (UnimplementedAuthStorage) SaveRefreshToken(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedAuthStorage) FindRefreshToken(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedAuthStorage) DeleteRefreshToken(string) error {
	return internal_errors.ErrNotImplemented
}

func NewAuth(storage AuthStorage, tokens TokenManager) *Auth {
	return &Auth{storage, tokens}
}

// GenerateToken issues an access/refresh pair and persists the refresh
// token. This is the only path that adds to the allow-list.
func (s *Auth) GenerateToken(claims domain.TokenClaims) (domain.TokenPair, error) {
	accessToken, err := s.tokens.NewAccessToken(claims)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.tokens.NewRefreshToken(claims)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.storage.SaveRefreshToken(refreshToken); err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccessToken requires BOTH a valid signature and allow-list
// membership. A signed, unexpired token that was logged out is rejected.
func (s *Auth) RefreshAccessToken(payload domain.RefreshToken) (string, error) {
	if err := payload.Validate(); err != nil {
		return "", err
	}
	claims, err := s.tokens.DecodeRefreshToken(payload.RefreshToken)
	if err != nil {
		return "", err
	}
	if err := s.storage.FindRefreshToken(payload.RefreshToken); err != nil {
		return "", err
	}
	return s.tokens.NewAccessToken(claims)
}

// RemoveRefreshToken revokes a refresh token. The decode call exists only
// to fail fast on malformed tokens; its claims are discarded.
func (s *Auth) RemoveRefreshToken(payload domain.RefreshToken) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	if err := s.storage.FindRefreshToken(payload.RefreshToken); err != nil {
		return err
	}
	if _, err := s.tokens.DecodeRefreshToken(payload.RefreshToken); err != nil {
		return err
	}
	return s.storage.DeleteRefreshToken(payload.RefreshToken)
}
