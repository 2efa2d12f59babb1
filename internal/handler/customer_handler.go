package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dealerdesk/internal/model"
)

type CustomerStore interface {
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
}

type CustomerHandler struct {
	store    CustomerStore
	validate *validator.Validate
}

func NewCustomerHandler(store CustomerStore, validate *validator.Validate) *CustomerHandler {
	return &CustomerHandler{store: store, validate: validate}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	customer, err := h.store.Create(r.Context(), model.Customer{
		ID:      uuid.NewString(),
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}
