package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/middleware"
	"github.com/goforum-dev/goforum/internal/utils"
)

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["threadId"]
	user := middleware.GetUserFromContext(r)

	var body createCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.comments.Create(domain.CreateComment{
		Content: sanitizer.Sanitize(body.Content),
	}, threadId, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.GetUserFromContext(r)

	if err := h.comments.Delete(vars["threadId"], vars["commentId"], user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.GetUserFromContext(r)

	if err := h.comments.ToggleLike(vars["threadId"], vars["commentId"], user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
