// Package fiber adapts the auth service to HTTP using Fiber.
package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/gateward/gateward/core"
)

const defaultCookieName = "token"

// Config controls how the adapter transports session tokens.
type Config struct {
	CookieName   string
	CookieMaxAge time.Duration
	CookieSecure bool
}

type Adapter struct {
	app    *fiber.App
	config Config
}

var _ core.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App, config Config) *Adapter {
	if config.CookieName == "" {
		config.CookieName = defaultCookieName
	}
	if config.CookieMaxAge <= 0 {
		config.CookieMaxAge = 24 * time.Hour
	}
	return &Adapter{app: app, config: config}
}

func (a *Adapter) RegisterRoutes(provider core.AuthProvider, signer core.TokenSigner, basePath string) error {
	api := a.app.Group(basePath)

	// Public routes
	api.Post("/sign-up", a.signup(provider, signer))
	api.Post("/sign-in", a.signin(provider, signer))

	// Protected routes
	api.Get("/me", a.RequireAuth(signer), a.me)

	return nil
}
