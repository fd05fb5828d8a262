package core

import "time"

// Roles a user account may hold. New accounts default to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a stored user account.
//
// PasswordHash never leaves the repository/service boundary: it is excluded
// from JSON and handlers build their own public payloads.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupInput contains validated data for registering a new user.
// The plaintext password only lives for the duration of the request.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginInput contains validated credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// TokenClaims is the identity a session token asserts.
type TokenClaims struct {
	UserID int64
	Email  string
	Role   string
}
