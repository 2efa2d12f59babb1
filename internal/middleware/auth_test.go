package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"dealerdesk/internal/model"
)

type fakeVerifier struct {
	claims *model.SessionClaims
	err    error
	tokens []string
}

func (f *fakeVerifier) Verify(tokenString string) (*model.SessionClaims, error) {
	f.tokens = append(f.tokens, tokenString)
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthenticateMissingHeader(t *testing.T) {
	handlerCalled := false
	mw := NewAuthMiddleware(&fakeVerifier{claims: &model.SessionClaims{}})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { handlerCalled = true })

	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "No token provided", decodeMessage(t, rec))
	require.False(t, handlerCalled)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{err: model.ErrInvalidToken})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run on verification failure")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	claims := &model.SessionClaims{SubjectID: "user-1", Role: model.RoleAdmin}
	verifier := &fakeVerifier{claims: claims}
	mw := NewAuthMiddleware(verifier)

	var seen *model.SessionClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, claims, seen)
	require.Equal(t, []string{"the-token"}, verifier.tokens)
}

func TestAuthenticateHeaderWithoutTokenSegment(t *testing.T) {
	// "Bearer" alone yields an empty token, which fails verification.
	verifier := &fakeVerifier{err: model.ErrInvalidToken}
	mw := NewAuthMiddleware(verifier)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", decodeMessage(t, rec))
	require.Equal(t, []string{""}, verifier.tokens)
}

func TestRequireRolesForbidsMismatchedRole(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{})
	gate := mw.RequireRoles(model.RoleAdmin)
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for a forbidden role")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &model.SessionClaims{SubjectID: "u", Role: model.RoleCustomer}))
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Forbidden", decodeMessage(t, rec))
}

func TestRequireRolesForbidsMissingIdentity(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{})
	gate := mw.RequireRoles(model.RoleAdmin)

	rec := httptest.NewRecorder()
	gate(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesAllowsMemberRole(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{})
	gate := mw.RequireRoles(model.RoleAdmin, model.RoleSales)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &model.SessionClaims{SubjectID: "u", Role: model.RoleSales}))
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}
