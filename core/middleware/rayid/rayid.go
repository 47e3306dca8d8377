package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header the ray id is read from and echoed back on.
const HeaderName = "X-Ray-ID"

// New returns middleware that assigns every request a ray id for tracing.
// An id supplied by the caller is reused so traces can span services;
// otherwise a fresh UUID is generated. The id is stored in Locals under
// "ray_id" for logger.WithRayID and set on the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
