package domain

import (
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

// TokenClaims is the identity embedded into access and refresh tokens.
type TokenClaims struct {
	Id       string
	Username string
}

// TokenPair is returned on login: the short-lived access token and the
// long-lived refresh token that was persisted to the allow-list.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken is the payload of refresh and logout requests.
type RefreshToken struct {
	RefreshToken string
}

func (p RefreshToken) Validate() error {
	if p.RefreshToken == "" {
		return &internal_errors.ValidationError{Message: "refresh token is required"}
	}
	return nil
}
