package core

import "errors"

// Authentication related errors
var (
	// User errors
	ErrEmailTaken         = errors.New("user with this email already exists") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")                      // repository-internal
	ErrInvalidCredentials = errors.New("invalid email or password")           // 401 Unauthorized
)

// Token errors
var (
	ErrMissingToken = errors.New("missing authentication token") // 401
	ErrInvalidToken = errors.New("invalid or expired token")     // 401
)

// ErrHashing marks a failure of the password hashing primitive itself.
// A password mismatch is NOT a hashing error: Verify reports it as
// (false, nil).
var ErrHashing = errors.New("password hashing failed")

// Config errors (server-side configuration)
var (
	ErrStoreRequired       = errors.New("user store is required")   // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required") // 500
	ErrSecretRequired      = errors.New("secret is required")       // 500
	ErrSecretTooShort      = errors.New("secret too short")         // 500
)
