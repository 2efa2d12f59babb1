package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"dealerdesk/internal/model"
	"dealerdesk/internal/service"
)

type AuthHandler struct {
	service  *service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: svc, validate: validate}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields required")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields required")
		return
	}

	user, err := h.service.Signup(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password required")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password required")
		return
	}

	resp, err := h.service.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
