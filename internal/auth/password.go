package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost the original deployment used.
const DefaultBcryptCost = 10

// PasswordHasher wraps bcrypt with a fixed cost factor. Hashing is
// intentionally slow and CPU-bound; each call salts independently, so
// two hashes of the same password never match byte-for-byte.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. A malformed hash is not an
// error, it simply does not match.
func (h *PasswordHasher) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
