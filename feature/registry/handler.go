package registry

import (
	"errors"

	"registry-server/core/logger"
	"registry-server/core/middleware/cors"
	"registry-server/core/source"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

const allowedMethods = "GET, HEAD, OPTIONS"

// Handler handles HTTP requests for registry files.
type Handler struct {
	service *Service
	browse  bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg Config) *Handler {
	return &Handler{service: service, browse: cfg.Browse}
}

// RegisterRoutes installs the registry as the catch-all of app. It must be the
// last feature registered.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(cors.New())
	app.Use(h.HandleRequest)
	if static := h.service.Static(); static != nil {
		app.Use(filesystem.New(filesystem.Config{
			Root:   static,
			Browse: h.browse,
		}))
	}
	app.Use(h.HandleNotFound)
}

// HandleRequest serves registry indexes and component manifests.
// @Summary Get Registry File
// @Description Returns a registry index (e.g. /registry.json) or a component manifest (e.g. /r/button.json) byte for byte.
// @Tags registry
// @Produce json
// @Param path path string true "Registry path"
// @Success 200 {object} map[string]interface{} "Registry file"
// @Failure 404 {string} string "File not found: {path}"
// @Failure 405 {string} string "Method Not Allowed"
// @Router /{path} [get]
func (h *Handler) HandleRequest(c *fiber.Ctx) error {
	d := h.service.Resolve(c.Method(), c.Path())

	switch d.Kind {
	case Preflight:
		c.Status(fiber.StatusOK)
		return nil
	case Serve:
		return h.serveFile(c, d)
	case Static:
		return c.Next()
	case MethodNotAllowed:
		c.Set(fiber.HeaderAllow, allowedMethods)
		return c.Status(fiber.StatusMethodNotAllowed).SendString(fiber.ErrMethodNotAllowed.Message)
	default:
		return h.HandleNotFound(c)
	}
}

// HandleNotFound answers 404 with the requested path echoed in the body.
func (h *Handler) HandleNotFound(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusNotFound).SendString("File not found: " + c.Path())
}

func (h *Handler) serveFile(c *fiber.Ctx, d Disposition) error {
	data, err := h.service.ReadFile(c.Context(), d.File)
	if err != nil {
		// Anything but a plain miss is worth a log line; the client still gets a 404.
		if !errors.Is(err, source.ErrNotFound) {
			logger.WithRayID(h.service.logger, c).Error("Failed to read registry file",
				zap.String("file", d.File),
				zap.Error(err),
			)
		}
		return h.HandleNotFound(c)
	}

	c.Set(fiber.HeaderContentType, d.ContentType)
	return c.Status(fiber.StatusOK).Send(data)
}
