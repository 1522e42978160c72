package middleware

import (
	"strings"

	"github.com/feedguard/feedguard/pkg/common"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const authorizationHeader = "Authorization"

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(authorizationHeader)
		if header == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "bearer token required"})
		}

		claims, err := m.jwtManager.DecodeToken(token)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		if claims.UserID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		ctx.Locals(common.UserContextKey, claims.Identity)

		return ctx.Next()
	}
}
