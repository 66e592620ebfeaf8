package domain

import "errors"

var (
	// ErrEmailTaken is returned when sign-up races or repeats an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when a bearer token does not resolve to
	// a live session row.
	ErrSessionNotFound = errors.New("session not found")
)
