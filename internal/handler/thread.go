package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/middleware"
	"github.com/goforum-dev/goforum/internal/utils"
)

type createThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var body createThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.threads.Create(domain.CreateThread{
		Title: sanitizer.Sanitize(body.Title),
		Body:  sanitizer.Sanitize(body.Body),
	}, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetThread returns the thread with its full comment and reply tree.
// No authentication: thread details are public.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["threadId"]

	detail, err := h.threads.GetDetail(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
