package registry

import (
	"context"
	"net/http"

	"registry-server/core/source"

	"go.uber.org/zap"
)

// Service resolves registry requests and reads the files they name.
type Service struct {
	router *Router
	layout Layout
	source source.Source
	static http.FileSystem
	logger *zap.Logger
}

// NewService creates a registry service. A nil static disables the static
// fallback even when the layout names a static directory.
func NewService(layout Layout, src source.Source, static http.FileSystem, logger *zap.Logger) *Service {
	if static == nil {
		layout.StaticDir = ""
	}
	return &Service{
		router: NewRouter(layout),
		layout: layout,
		source: src,
		static: static,
		logger: logger,
	}
}

// Resolve routes a request, see Router.Resolve.
func (s *Service) Resolve(method, rawPath string) Disposition {
	return s.router.Resolve(method, rawPath)
}

// ReadFile reads a resolved registry file from the source.
func (s *Service) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return s.source.ReadFile(ctx, name)
}

// Layout returns the effective layout.
func (s *Service) Layout() Layout {
	return s.layout
}

// Static returns the static fallback file system, or nil.
func (s *Service) Static() http.FileSystem {
	return s.static
}
