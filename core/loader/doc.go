// Package loader mounts features on the Fiber app.
//
// A feature bundles a service, its handler and its routes behind the Feature
// interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.Register records features in order and Manager.LoadAll mounts the
// enabled ones, returning their names. Features that install catch-all
// handlers, such as the registry file server, must be registered last.
package loader
