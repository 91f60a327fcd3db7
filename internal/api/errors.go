// ABOUTME: Error types for the rental backend API client
// ABOUTME: Carries HTTP status and backend message; classifies auth failures

package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks 401 responses and rejected logins. Matching
// with errors.Is lets callers react without inspecting status codes.
var ErrUnauthorized = errors.New("unauthorized")

// Validation errors raised before any network call.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrMissingCustomer    = errors.New("rental requires a customer")
	ErrMissingProduct     = errors.New("rental requires a product")
)

// Error is a backend failure carrying the HTTP status and, when the
// body could be decoded, the backend's error message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Unwrap() error {
	if e.StatusCode == 401 {
		return ErrUnauthorized
	}
	return nil
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
