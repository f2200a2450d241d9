package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/logger"
)

// WriteErrorAndStatusCode translates a domain error to its HTTP status.
// Unclassified faults become a generic 500 without leaking internals.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	code := internal_errors.StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		http.Error(w, "Internal server error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

// Decode parses a JSON request body. A body that does not match the target
// shape, mistyped fields included, is a validation failure.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.ValidationError{Message: "request body is not valid json for this endpoint"}
	}
	return nil
}

// DecodeValidate parses the body and checks `validate` struct tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &internal_errors.ValidationError{Message: "required fields missing"}
	}
	return nil
}
