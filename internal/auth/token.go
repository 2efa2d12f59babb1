package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dealerdesk/internal/model"
)

// TokenIssuer signs and verifies self-contained HS256 bearer tokens.
// Tokens carry the subject id, role and expiry; there is no server-side
// session store, so a token stays valid until its embedded expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity using the configured TTL.
func (t *TokenIssuer) Issue(subjectID string, role string) (string, error) {
	return t.IssueWithTTL(subjectID, role, t.ttl)
}

func (t *TokenIssuer) IssueWithTTL(subjectID string, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(t.secret)
}

// Verify checks signature integrity and expiry. Every failure mode
// (malformed token, bad signature, expired token) is reported as the
// same model.ErrInvalidToken so callers cannot probe which check failed.
func (t *TokenIssuer) Verify(tokenString string) (*model.SessionClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	claims := &model.SessionClaims{}
	claims.SubjectID, _ = claimsMap["sub"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	if claims.SubjectID == "" {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}
