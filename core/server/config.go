package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReuseAddress enables SO_REUSEADDR so quick restarts can rebind the port.
	ReuseAddress bool `mapstructure:"reuse_address" default:"true"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may take after a stop signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Address returns the host:port pair to listen on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ShutdownTimeout returns the graceful shutdown bound, defaulting to 10s.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ParsePort validates a port given on the command line.
func ParsePort(arg string) (string, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: not an integer", arg)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return strconv.Itoa(port), nil
}
