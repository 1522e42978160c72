package http

import (
	"github.com/feedguard/feedguard/pkg/common"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
)

// identityFromContext pulls the authenticated user stored by the auth
// middleware.
func identityFromContext(c *fiber.Ctx) (jwt.Identity, bool) {
	identity, ok := c.Locals(common.UserContextKey).(jwt.Identity)
	return identity, ok
}
