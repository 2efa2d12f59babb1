package model

// ErrorResponse is the body of every failure: a single message, no
// internal detail.
type ErrorResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
