package apierror

import "net/http"

// APIError is an error that knows which HTTP status and client-facing
// message it maps to. Handlers return it up the stack and writeError
// translates it; anything that is not an APIError collapses to a 500.
type APIError struct {
	Message    string
	HTTPStatus int
}

func (e *APIError) Error() string {
	return e.Message
}

func New(message string, status int) *APIError {
	return &APIError{Message: message, HTTPStatus: status}
}

func BadRequest(message string) *APIError {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New(message, http.StatusUnauthorized)
}

func Forbidden(message string) *APIError {
	return New(message, http.StatusForbidden)
}

func Conflict(message string) *APIError {
	return New(message, http.StatusConflict)
}
