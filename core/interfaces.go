package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT (Database operations)
// ============================================

// UserStore defines user-related database operations.
// All operations are single-row and complete-or-fail before returning.
type UserStore interface {
	// EmailExists reports whether a user with this email is already stored.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Create stores a new user and fills server-assigned fields (ID,
	// CreatedAt). Returns ErrEmailTaken when the email unique constraint
	// is violated; the constraint, not the caller's pre-check, is the
	// authoritative duplicate detector.
	Create(ctx context.Context, u *User) error

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound when
	// no row matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// ============================================
// CRYPTO PORTS
// ============================================

// PasswordHasher provides one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify returns (true, nil) on match, (false, nil) on mismatch, and
	// a non-nil error only when the primitive itself fails.
	Verify(password, hash string) (bool, error)
}

// TokenSigner mints and verifies signed session tokens.
type TokenSigner interface {
	Sign(user *User) (string, error)
	Parse(token string) (*TokenClaims, error)
}

// ============================================
// AUTH PROVIDER (for HTTP adapters)
// ============================================

// AuthProvider provides authentication operations for HTTP adapters.
type AuthProvider interface {
	Signup(ctx context.Context, input SignupInput) (*User, error)
	Authenticate(ctx context.Context, input LoginInput) (*User, error)
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(provider AuthProvider, signer TokenSigner, basePath string) error
}
