package auth_test

import (
	"net/http/httptest"
	"testing"

	"auction-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("Disabled when no key configured", func(t *testing.T) {
		app := newApp("")
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Rejects missing key", func(t *testing.T) {
		app := newApp("secret")
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Rejects wrong key", func(t *testing.T) {
		app := newApp("secret")
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(auth.HeaderName, "wrong")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Accepts correct key", func(t *testing.T) {
		app := newApp("secret")
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
