// Package registry implements the component registry file server.
//
// A package-installer client fetches a registry index and then individual
// component manifests with plain GET requests. This feature maps those URL paths
// onto files in a source.Source and writes their bytes back untouched, with
// permissive CORS headers.
//
// # Layouts
//
// Two route sets are built in and can be combined:
//
//   - shadcn: GET /registry.json serves registry.json, GET /r/{name}.json serves public/r/{name}.json.
//   - public: GET /registry/index.json serves public/registry/index.json,
//     GET /registry/ui/{name}.json serves public/registry/ui/{name}.json, and any other
//     path falls back to static files under public/.
//
// # Components
//
//   - Router: Pure routing from (method, path) to a Disposition.
//   - Service: Holds the router, the source and the optional static file system.
//   - Handler: Writes dispositions as HTTP responses.
//   - Feature: Registers the handler with the application.
//
// A resolved component file always stays lexically inside its component
// directory; traversal attempts are answered with 404.
package registry
