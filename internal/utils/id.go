package utils

import "github.com/google/uuid"

// NewId produces an opaque unique id. Entity prefixes ("thread-", etc.) are
// added at the storage boundary.
func NewId() string {
	return uuid.New().String()
}
