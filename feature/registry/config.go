package registry

// Config holds configuration for the registry feature.
type Config struct {
	// Layouts lists the route sets to serve, in priority order.
	Layouts []string `mapstructure:"layouts" default:"shadcn"`
	// Browse lists directory contents in the static fallback when no index.html exists.
	Browse bool `mapstructure:"browse" default:"false"`
}
