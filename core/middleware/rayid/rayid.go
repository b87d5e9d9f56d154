package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the RayID in requests and responses.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key logger.WithRayID reads.
const LocalsKey = "ray_id"

// New returns a middleware that tags each request with a RayID. A valid
// UUID supplied by the caller is kept so client and server logs correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
