package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/gateward/gateward/core"
	"github.com/gateward/gateward/validation"
)

// signup returns the handler for the sign-up endpoint.
func (a *Adapter) signup(provider core.AuthProvider, signer core.TokenSigner) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req validation.SignupRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"details": "request body must be valid JSON",
			})
		}

		input, err := validation.Signup(req)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{
					"message": "Validation failed",
					"details": verr.Details(),
				})
			}
			return err
		}

		user, err := provider.Signup(c.Context(), input)
		if err != nil {
			if errors.Is(err, core.ErrEmailTaken) {
				return c.Status(http.StatusConflict).JSON(fiber.Map{
					"message": "Email already exist",
				})
			}
			// Anything else goes to the app-level error handler.
			return err
		}

		token, err := signer.Sign(user)
		if err != nil {
			return err
		}
		a.setTokenCookie(c, token)

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"message": "User signed up successfully",
			"user":    publicUser(user),
		})
	}
}

// signin returns the handler for the sign-in endpoint.
func (a *Adapter) signin(provider core.AuthProvider, signer core.TokenSigner) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req validation.LoginRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"details": "request body must be valid JSON",
			})
		}

		input, err := validation.Login(req)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{
					"message": "Validation failed",
					"details": verr.Details(),
				})
			}
			return err
		}

		user, err := provider.Authenticate(c.Context(), input)
		if err != nil {
			if errors.Is(err, core.ErrInvalidCredentials) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid email or password",
				})
			}
			return err
		}

		token, err := signer.Sign(user)
		if err != nil {
			return err
		}
		a.setTokenCookie(c, token)

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": "User signed in successfully",
			"user":    publicUser(user),
		})
	}
}

// me returns the identity asserted by the presented token.
func (a *Adapter) me(c fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*core.TokenClaims)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": core.ErrMissingToken.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": fiber.Map{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

// publicUser is the sanitized user payload. The password hash is excluded
// from JSON anyway; building the map keeps the surface explicit.
func publicUser(u *core.User) fiber.Map {
	return fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// setTokenCookie attaches the session token via the cookie transport.
func (a *Adapter) setTokenCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     a.config.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.config.CookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   a.config.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
