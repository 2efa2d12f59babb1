package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"dealerdesk/internal/model"
)

// tokenVerifier is implemented by auth.TokenIssuer.
type tokenVerifier interface {
	Verify(tokenString string) (*model.SessionClaims, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate extracts and verifies the bearer token, attaching the
// resulting identity to the request context. The token is the second
// whitespace-delimited segment of the Authorization header; the scheme
// itself is not inspected, matching the original clients which always
// send "Bearer <token>".
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			writeAuthFailure(w, http.StatusUnauthorized, "No token provided")
			return
		}

		var token string
		if fields := strings.Fields(header); len(fields) > 1 {
			token = fields[1]
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			writeAuthFailure(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to a fixed allow-list of roles. It must run
// after Authenticate; a request without an attached identity is refused.
func (m *AuthMiddleware) RequireRoles(allowed ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := IdentityFromContext(r.Context())
			if !ok {
				writeAuthFailure(w, http.StatusForbidden, "Forbidden")
				return
			}

			if _, member := roleSet[claims.Role]; !member {
				writeAuthFailure(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the authenticated identity attached by
// Authenticate, if any.
func IdentityFromContext(ctx context.Context) (*model.SessionClaims, bool) {
	claims, ok := ctx.Value(identityContextKey).(*model.SessionClaims)
	return claims, ok
}

// WithIdentity attaches claims to a context. Exposed for handler tests.
func WithIdentity(ctx context.Context, claims *model.SessionClaims) context.Context {
	return context.WithValue(ctx, identityContextKey, claims)
}

func writeAuthFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Message: message})
}
