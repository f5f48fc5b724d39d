// Package cors sets permissive cross-origin headers on every response.
//
// Unlike fiber's own cors middleware, the headers are written whether or not
// the request carries an Origin header, and the method list keeps the exact
// "GET, POST, OPTIONS" spelling installer clients have been seen to compare.
package cors

import "github.com/gofiber/fiber/v2"

// Config holds the header values written by the middleware.
type Config struct {
	// AllowOrigin is the Access-Control-Allow-Origin value.
	AllowOrigin string
	// AllowMethods is the Access-Control-Allow-Methods value.
	AllowMethods string
	// AllowHeaders is the Access-Control-Allow-Headers value.
	AllowHeaders string
}

// ConfigDefault allows any origin to GET the registry.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, OPTIONS",
	AllowHeaders: "Content-Type",
}

// New creates the middleware. Empty fields fall back to ConfigDefault.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
		if cfg.AllowOrigin == "" {
			cfg.AllowOrigin = ConfigDefault.AllowOrigin
		}
		if cfg.AllowMethods == "" {
			cfg.AllowMethods = ConfigDefault.AllowMethods
		}
		if cfg.AllowHeaders == "" {
			cfg.AllowHeaders = ConfigDefault.AllowHeaders
		}
	}

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		return c.Next()
	}
}
