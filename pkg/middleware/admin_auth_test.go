package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/auth/jwt"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/middleware"
)

func setupApp(t *testing.T) (*fiber.App, jwt.Manager) {
	t.Helper()
	logger := logrus.New()
	jwtManager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})
	authMiddleware := middleware.NewAdminAuthMiddleware(logger, jwtManager)

	app := fiber.New()
	app.Use(authMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	return app, jwtManager
}

func TestAdminAuthMiddleware_NoHeader(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "missing authorization header")
}

func TestAdminAuthMiddleware_InvalidFormat(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "invalid authorization header")
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "invalid or expired token")
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	app, jwtManager := setupApp(t)

	token, err := jwtManager.CreateToken()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
