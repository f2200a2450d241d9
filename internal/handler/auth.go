package handler

import (
	"net/http"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/utils"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login verifies the credential and issues a token pair. The refresh token
// is persisted so it can be revoked; the access token is not.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	userId, err := h.users.VerifyCredential(domain.UserCredentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	pair, err := h.auth.GenerateToken(domain.TokenClaims{Id: userId, Username: body.Username})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, pair)
}

func (h *Handler) RefreshAccessToken(w http.ResponseWriter, r *http.Request) {
	var body refreshTokenRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.RefreshAccessToken(domain.RefreshToken{RefreshToken: body.RefreshToken})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, accessTokenResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body refreshTokenRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.RemoveRefreshToken(domain.RefreshToken{RefreshToken: body.RefreshToken}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
