package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Ray-ID"

// LocalKey is the fiber.Ctx locals key read by logger.WithRayID.
const LocalKey = "ray_id"

// New returns a middleware that assigns every request an id. An incoming
// X-Ray-ID header is reused so ids can be propagated across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
