// Package rayid tags every request with a unique id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key read by logger.WithRayID.
	LocalsKey = "ray_id"
)

// Config configures the middleware.
type Config struct {
	// Generator produces new ids. Defaults to uuid.NewString.
	Generator func() string
}

// New creates the ray id middleware.
// An incoming X-Ray-ID is kept so ids can be propagated by an upstream proxy.
func New(config ...Config) fiber.Handler {
	gen := uuid.NewString
	if len(config) > 0 && config[0].Generator != nil {
		gen = config[0].Generator
	}

	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = gen()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
