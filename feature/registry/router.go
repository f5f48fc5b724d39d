package registry

import (
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Kind is the outcome of routing a request.
type Kind int

const (
	// NotFound answers 404 with the requested path in the body.
	NotFound Kind = iota
	// Serve answers 200 with the contents of Disposition.File.
	Serve
	// Static hands the request to the static file responder.
	Static
	// Preflight answers a CORS preflight with an empty 200.
	Preflight
	// MethodNotAllowed answers 405.
	MethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case Serve:
		return "serve"
	case Static:
		return "static"
	case Preflight:
		return "preflight"
	case MethodNotAllowed:
		return "method_not_allowed"
	default:
		return "not_found"
	}
}

// Disposition tells the handler how to answer a request.
type Disposition struct {
	Kind        Kind
	File        string
	ContentType string
}

// Router maps a method and URL path onto a Disposition. It holds no per-request state.
type Router struct {
	layout Layout
}

// NewRouter creates a router for layout.
func NewRouter(layout Layout) *Router {
	return &Router{layout: layout}
}

// Resolve routes a request. rawPath is the path as received, before percent-decoding.
//
// Rules, first match wins: OPTIONS is a preflight; an index path serves its index;
// a component prefix with a .json suffix serves a manifest from the component
// directory; anything else goes to the static fallback when there is one.
func (r *Router) Resolve(method, rawPath string) Disposition {
	switch method {
	case fiber.MethodOptions:
		return Disposition{Kind: Preflight}
	case fiber.MethodGet, fiber.MethodHead:
	default:
		return Disposition{Kind: MethodNotAllowed}
	}

	p, err := url.PathUnescape(rawPath)
	if err != nil {
		return Disposition{Kind: NotFound}
	}

	for _, route := range r.layout.Routes {
		if p == route.IndexPath {
			return Disposition{Kind: Serve, File: route.IndexFile, ContentType: fiber.MIMEApplicationJSON}
		}
	}

	for _, route := range r.layout.Routes {
		if !strings.HasPrefix(p, route.Prefix) || !strings.HasSuffix(p, ".json") {
			continue
		}
		file, ok := joinInside(route.Dir, p[len(route.Prefix):])
		if !ok {
			return Disposition{Kind: NotFound}
		}
		return Disposition{Kind: Serve, File: file, ContentType: fiber.MIMEApplicationJSON}
	}

	if r.layout.StaticDir != "" {
		return Disposition{Kind: Static}
	}
	return Disposition{Kind: NotFound}
}

// joinInside appends rest to dir and reports whether the result stays lexically inside dir.
func joinInside(dir, rest string) (string, bool) {
	if rest == "" || strings.ContainsAny(rest, "\\\x00") {
		return "", false
	}

	candidate := path.Join(dir, rest)
	if !fs.ValidPath(candidate) || candidate == dir {
		return "", false
	}
	if dir != "." && !strings.HasPrefix(candidate, dir+"/") {
		return "", false
	}
	return candidate, true
}
