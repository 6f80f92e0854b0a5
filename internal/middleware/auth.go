package middleware

import (
	"devconnect/internal/auth"
	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "x-auth-token"

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired enforces authentication for protected routes. It reads the
// token from the x-auth-token header, verifies it, and stores the caller's
// identity in locals. Missing and invalid tokens are both rejected with 401;
// verification is one-shot and the handler is skipped on failure.
func AuthRequired(c *fiber.Ctx) error {
	token := c.Get(TokenHeader)
	if token == "" {
		observability.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("No token provided, authentication denied"))
	}

	identity, err := auth.VerifyToken(cfg.JWTSecret, token)
	if err != nil {
		observability.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token"))
	}

	c.Locals("userID", identity.ID)
	c.Locals("userName", identity.Name)

	return c.Next()
}
