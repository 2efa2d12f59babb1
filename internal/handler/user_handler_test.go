package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealerdesk/internal/auth"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/model"
	"dealerdesk/internal/service"
)

func newTestUserHandler(store service.UserStore) *UserHandler {
	svc := service.NewAuthService(store, auth.NewPasswordHasher(4), auth.NewTokenIssuer("test-secret", time.Hour))
	return NewUserHandler(svc)
}

func TestMeReturnsCallerProfile(t *testing.T) {
	store := newMemUserStore()
	require.NoError(t, store.Create(context.Background(), model.User{
		ID: "u-1", Name: "A", Email: "a@x.com", PasswordHash: "h", Role: model.RoleService,
	}))
	h := newTestUserHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), &model.SessionClaims{SubjectID: "u-1", Role: model.RoleService}))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body model.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, model.PublicUser{ID: "u-1", Name: "A", Email: "a@x.com", Role: model.RoleService}, body)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestMeWithoutIdentityIsUnauthorized(t *testing.T) {
	h := newTestUserHandler(newMemUserStore())

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListReturnsAllUsers(t *testing.T) {
	store := newMemUserStore()
	require.NoError(t, store.Create(context.Background(), model.User{ID: "u-1", Name: "A", Email: "a@x.com", Role: model.RoleAdmin}))
	require.NoError(t, store.Create(context.Background(), model.User{ID: "u-2", Name: "B", Email: "b@x.com", Role: model.RoleSales}))
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []model.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
}

func TestListCollapsesStoreFaultsToServerError(t *testing.T) {
	store := newMemUserStore()
	store.listErr = errTestStore
	h := newTestUserHandler(store)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Server error"}`, rec.Body.String())
}
