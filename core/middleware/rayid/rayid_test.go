package rayid_test

import (
	"net/http/httptest"
	"testing"

	"auction-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("ray_id").(string)
		return c.SendString(rid)
	})

	t.Run("Generates id when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("Reuses supplied id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "trace-123")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "trace-123", resp.Header.Get(rayid.HeaderName))
	})
}
