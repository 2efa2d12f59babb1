package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors. Malformed, tampered and expired tokens all
	// collapse to ErrInvalidToken; callers never learn which it was.
	ErrInvalidToken = errors.New("invalid token")

	// Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
