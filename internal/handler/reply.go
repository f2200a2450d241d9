package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/middleware"
	"github.com/goforum-dev/goforum/internal/utils"
)

type createReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.GetUserFromContext(r)

	var body createReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.replies.Create(domain.CreateReply{
		Content: sanitizer.Sanitize(body.Content),
	}, vars["threadId"], vars["commentId"], user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.GetUserFromContext(r)

	if err := h.replies.Delete(vars["threadId"], vars["commentId"], vars["replyId"], user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
