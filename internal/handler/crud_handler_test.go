package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/model"
)

var errTestStore = errors.New("store failure")

type memLeadStore struct {
	leads []model.Lead
	err   error
}

func (s *memLeadStore) List(context.Context) ([]model.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.leads, nil
}

func (s *memLeadStore) Create(_ context.Context, l model.Lead) (model.Lead, error) {
	if s.err != nil {
		return model.Lead{}, s.err
	}
	s.leads = append(s.leads, l)
	return l, nil
}

type memCustomerStore struct {
	customers []model.Customer
}

func (s *memCustomerStore) List(context.Context) ([]model.Customer, error) {
	return s.customers, nil
}

func (s *memCustomerStore) Create(_ context.Context, c model.Customer) (model.Customer, error) {
	s.customers = append(s.customers, c)
	return c, nil
}

type memPartStore struct {
	parts []model.Part
}

func (s *memPartStore) List(context.Context) ([]model.Part, error) {
	return s.parts, nil
}

func (s *memPartStore) Create(_ context.Context, p model.Part) (model.Part, error) {
	s.parts = append(s.parts, p)
	return p, nil
}

type memJobCardStore struct {
	cards []model.JobCard
}

func (s *memJobCardStore) List(context.Context) ([]model.JobCard, error) {
	return s.cards, nil
}

func (s *memJobCardStore) Create(_ context.Context, jc model.JobCard) (model.JobCard, error) {
	s.cards = append(s.cards, jc)
	return jc, nil
}

func TestLeadCreateAndList(t *testing.T) {
	store := &memLeadStore{}
	h := NewLeadHandler(store, validator.New())

	rec := postJSON(t, h.Create, "/api/sales/leads", map[string]any{
		"name": "Prospect", "phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Prospect", created.Name)
	require.Equal(t, "new", created.Status)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/sales/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
}

func TestLeadCreateMissingNameIsBadRequest(t *testing.T) {
	h := NewLeadHandler(&memLeadStore{}, validator.New())

	rec := postJSON(t, h.Create, "/api/sales/leads", map[string]any{"phone": "555-0100"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"Missing required fields"}`, rec.Body.String())
}

func TestLeadListStoreFaultIsServerError(t *testing.T) {
	h := NewLeadHandler(&memLeadStore{err: errTestStore}, validator.New())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/sales/leads", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Server error"}`, rec.Body.String())
}

func TestJobCardCreateDefaultsStatus(t *testing.T) {
	h := NewJobCardHandler(&memJobCardStore{}, validator.New())

	rec := postJSON(t, h.Create, "/api/service/job-cards", map[string]any{"car_model": "Corolla"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.JobCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Corolla", created.CarModel)
	require.Equal(t, "open", created.Status)
}

func TestJobCardCreateRequiresCarModel(t *testing.T) {
	h := NewJobCardHandler(&memJobCardStore{}, validator.New())

	rec := postJSON(t, h.Create, "/api/service/job-cards", map[string]any{"status": "open"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPartCreateAndList(t *testing.T) {
	store := &memPartStore{}
	h := NewPartHandler(store, validator.New())

	rec := postJSON(t, h.Create, "/api/inventory/parts", map[string]any{
		"name": "Brake pad", "part_number": "BP-100", "stock": 12, "reorder_level": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Part
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, 12, created.Stock)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/parts", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPartCreateRequiresPartNumber(t *testing.T) {
	h := NewPartHandler(&memPartStore{}, validator.New())

	rec := postJSON(t, h.Create, "/api/inventory/parts", map[string]any{"name": "Brake pad"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerCreateAndList(t *testing.T) {
	store := &memCustomerStore{}
	h := NewCustomerHandler(store, validator.New())

	rec := postJSON(t, h.Create, "/api/customers", map[string]any{
		"name": "B", "email": "b@x.com", "address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "B", listed[0].Name)
}
