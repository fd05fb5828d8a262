package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/gateward/gateward/core"
)

// RequireAuth creates a middleware that verifies the session token and
// stores its claims in the context for downstream handlers.
func (a *Adapter) RequireAuth(signer core.TokenSigner) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := a.extractToken(c)
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": core.ErrMissingToken.Error(),
			})
		}

		claims, err := signer.Parse(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": core.ErrInvalidToken.Error(),
			})
		}

		c.Locals("claims", claims)

		return c.Next()
	}
}

// extractToken extracts the session token from the request.
// Checks Authorization header (Bearer token) first, then falls back to cookie.
func (a *Adapter) extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return c.Cookies(a.config.CookieName)
}
