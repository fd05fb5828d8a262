// Package gateward wires the authentication building blocks together:
// a user store, a password hasher, a token signer, and an HTTP adapter
// that exposes the sign-up, sign-in, and session endpoints.
package gateward

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gateward/gateward/core"
	"github.com/gateward/gateward/pkg/crypto"
	"github.com/gateward/gateward/services"
)

// interfaces
type (
	UserStore      = core.UserStore
	PasswordHasher = core.PasswordHasher
	TokenSigner    = core.TokenSigner
	AuthProvider   = core.AuthProvider
	HTTPAdapter    = core.HTTPAdapter
)

// structs
type (
	User        = core.User
	SignupInput = core.SignupInput
	LoginInput  = core.LoginInput
	TokenClaims = core.TokenClaims
)

const (
	defaultBasePath  = "/api/auth"
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2 = core.NewArgon2
	NewSigner = crypto.NewSigner
)

var (
	ErrEmailTaken         = core.ErrEmailTaken
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrMissingToken = core.ErrMissingToken
	ErrInvalidToken = core.ErrInvalidToken
)

var (
	ErrStoreRequired       = core.ErrStoreRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

// Config carries every dependency and knob New needs. Store, HTTP, and
// Secret are required; everything else has a sensible default.
type Config struct {
	// Secret signs session tokens. Must be at least 32 characters.
	Secret string

	// TokenTTL bounds session token lifetime. Defaults to 24h.
	TokenTTL time.Duration

	// Store persists users. Required.
	Store core.UserStore

	// HTTP mounts the auth routes. Required.
	HTTP core.HTTPAdapter

	// PasswordHasher defaults to Argon2id with OWASP parameters.
	PasswordHasher core.PasswordHasher

	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger

	// BasePath defaults to "/api/auth".
	BasePath string
}

// Gateward is the assembled service.
type Gateward struct {
	Auth     *services.AuthService
	Signer   *crypto.Signer
	BasePath string
}

func New(config Config) (*Gateward, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = core.NewArgon2()
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	signer := crypto.NewSigner(config.Secret, config.TokenTTL)

	gw := &Gateward{
		Auth:     services.NewAuthService(config.Store, passwordHasher, logger),
		Signer:   signer,
		BasePath: basePath,
	}

	if err := config.HTTP.RegisterRoutes(gw.Auth, signer, basePath); err != nil {
		return nil, err
	}

	return gw, nil
}
