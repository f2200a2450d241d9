package handler

import (
	"net/http"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/utils"
)

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body registerUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	registered, err := h.users.Register(domain.RegisterUser{
		Username: sanitizer.Sanitize(body.Username),
		Password: body.Password,
		Fullname: sanitizer.Sanitize(body.Fullname),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registered)
}
