package model

import "time"

const (
	RoleAdmin      = "admin"
	RoleSales      = "sales"
	RoleService    = "service"
	RoleTechnician = "technician"
	RoleCustomer   = "customer"
)

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSales, RoleService, RoleTechnician, RoleCustomer:
		return true
	}
	return false
}

// User is the persisted identity row. PasswordHash must never be
// serialized into a response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// SessionClaims is the identity reconstructed from a verified bearer
// token. It lives only for the duration of a single request.
type SessionClaims struct {
	SubjectID string
	Role      string
}
