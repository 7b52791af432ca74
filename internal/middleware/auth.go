package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/pathwaycare/intake-api/internal/types"
)

// RequireAuth validates the Bearer token and stores the acting principal in
// the request context under "user".
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return types.NewUnauthenticatedError("Not authorized, no token")
		}
		user, err := services.ParseToken(jwtSecret, token)
		if err != nil {
			return err
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireAdmin rejects any principal without the admin role. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !user.IsAdmin() {
			return types.NewForbiddenError("Admin access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the principal stored by RequireAuth; the zero value
// when the route is unauthenticated.
func CurrentUser(c *fiber.Ctx) services.CurrentUser {
	user, _ := c.Locals("user").(services.CurrentUser)
	return user
}
