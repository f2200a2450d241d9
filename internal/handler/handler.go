// Package handler implements the HTTP endpoints on top of the services.
// Handlers decode and sanitize input, call one service method and translate
// the outcome; business rules live below.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goforum-dev/goforum/internal/logger"
	"github.com/goforum-dev/goforum/internal/service"
)

type Handler struct {
	users    service.UserService
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
}

func New(users service.UserService, auth service.AuthService, threads service.ThreadService, comments service.CommentService, replies service.ReplyService) *Handler {
	return &Handler{users, auth, threads, comments, replies}
}

// sanitizer strips all markup from user-provided text at the transport
// boundary. Stored content is already safe to echo back.
var sanitizer = bluemonday.StrictPolicy()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// Health is a liveness probe endpoint.
// Returns 200 OK if the server is running.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
