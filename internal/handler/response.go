package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dealerdesk/internal/model"
	"dealerdesk/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Message: message})
}

// writeError maps errors to the wire format: every failure is a small
// {"message": ...} object. Anything unclassified becomes a generic 500
// with no internal detail leaked.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		writeMessage(w, apiErr.HTTPStatus, apiErr.Message)
	case errors.Is(err, model.ErrEmailExists):
		writeMessage(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, model.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, model.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Forbidden")
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
