package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateUser marks a registration attempt for an email that already has an account.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrStore marks a failure in the external persistence layer, propagated unchanged.
	ErrStore = errors.New("store failure")
	// ErrUnauthorized marks a missing or invalid identity token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUserNotFound is internal to the store boundary. The auth service
	// maps it to ErrInvalidCredentials before it can reach a caller.
	ErrUserNotFound = errors.New("user not found")
)
