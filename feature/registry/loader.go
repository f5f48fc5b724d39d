package registry

import (
	"net/http"
	"path/filepath"

	"registry-server/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the registry feature. staticRoot is the local directory the
// static fallback is resolved against; it is empty when files do not live on disk,
// which disables the fallback.
func NewFeature(cfg Config, src source.Source, staticRoot string, logger *zap.Logger) (*Feature, error) {
	layout, err := CombineLayouts(cfg.Layouts)
	if err != nil {
		return nil, err
	}

	var static http.FileSystem
	if layout.StaticDir != "" {
		if staticRoot == "" {
			logger.Warn("Static fallback requires the fs source driver, disabling it",
				zap.String("layout", layout.Name),
				zap.String("static_dir", layout.StaticDir))
		} else {
			static = http.Dir(filepath.Join(staticRoot, filepath.FromSlash(layout.StaticDir)))
		}
	}

	svc := NewService(layout, src, static, logger)
	return &Feature{service: svc, handler: NewHandler(svc, cfg)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "registry"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Layout returns the routes being served.
func (f *Feature) Layout() Layout {
	return f.service.Layout()
}
