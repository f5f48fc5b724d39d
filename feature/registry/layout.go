package registry

import (
	"fmt"
	"strings"
)

// Route pairs a registry index with the directory holding its component manifests.
type Route struct {
	// IndexPath is the exact URL path of the index, e.g. "/registry.json".
	IndexPath string `json:"index_path"`
	// IndexFile is the index file name relative to the registry root.
	IndexFile string `json:"index_file"`
	// Prefix is the URL prefix of component manifests, e.g. "/r/". It ends with "/".
	Prefix string `json:"prefix"`
	// Dir is the component directory relative to the registry root.
	Dir string `json:"dir"`
}

// Layout is a named set of routes plus an optional static fallback directory.
type Layout struct {
	Name      string  `json:"name"`
	Routes    []Route `json:"routes"`
	StaticDir string  `json:"static_dir,omitempty"`
}

// Built-in layouts.
var (
	// LayoutShadcn serves a root registry.json and built manifests under /r/.
	LayoutShadcn = Layout{
		Name: "shadcn",
		Routes: []Route{{
			IndexPath: "/registry.json",
			IndexFile: "registry.json",
			Prefix:    "/r/",
			Dir:       "public/r",
		}},
	}

	// LayoutPublic serves everything out of public/, with a static fallback for other files.
	LayoutPublic = Layout{
		Name: "public",
		Routes: []Route{{
			IndexPath: "/registry/index.json",
			IndexFile: "public/registry/index.json",
			Prefix:    "/registry/ui/",
			Dir:       "public/registry/ui",
		}},
		StaticDir: "public",
	}
)

var layouts = map[string]Layout{
	LayoutShadcn.Name: LayoutShadcn,
	LayoutPublic.Name: LayoutPublic,
}

// LookupLayout returns the built-in layout called name.
func LookupLayout(name string) (Layout, bool) {
	l, ok := layouts[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// CombineLayouts merges the named layouts. Routes keep the given order and the
// first non-empty static directory wins.
func CombineLayouts(names []string) (Layout, error) {
	var (
		combined Layout
		seen     = make(map[string]bool)
		used     []string
	)

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		l, ok := LookupLayout(name)
		if !ok {
			return Layout{}, fmt.Errorf("unknown registry layout %q", name)
		}
		if seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		used = append(used, l.Name)

		combined.Routes = append(combined.Routes, l.Routes...)
		if combined.StaticDir == "" {
			combined.StaticDir = l.StaticDir
		}
	}

	if len(used) == 0 {
		return Layout{}, fmt.Errorf("no registry layout configured")
	}
	combined.Name = strings.Join(used, ",")
	return combined, nil
}
