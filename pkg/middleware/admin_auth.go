package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/auth/jwt"
)

const bearerPrefix = "Bearer "

type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAdminAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

// Middleware guards the test-management API: every request must carry a valid
// bearer token issued by the jwt manager. Rejections share the error payload
// shape of the handlers.
func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(ctx, "missing authorization header")
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == authHeader || token == "" {
			return m.reject(ctx, "invalid authorization header")
		}

		if err := m.jwtManager.ValidateToken(token); err != nil {
			m.logger.WithError(err).WithFields(logrus.Fields{
				"path":   ctx.Path(),
				"method": ctx.Method(),
			}).Warn("rejected admin token")
			return m.reject(ctx, "invalid or expired token")
		}

		return ctx.Next()
	}
}

func (m *adminAuthMiddleware) reject(ctx *fiber.Ctx, reason string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": reason})
}
