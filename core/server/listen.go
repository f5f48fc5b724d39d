package server

import (
	"context"
	"fmt"
	"net"
)

// Listen binds the TCP listener described by cfg.
func Listen(ctx context.Context, cfg Config) (net.Listener, error) {
	lc := net.ListenConfig{}
	if cfg.ReuseAddress {
		lc.Control = reuseAddr
	}

	ln, err := lc.Listen(ctx, "tcp", cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", cfg.Address(), err)
	}
	return ln, nil
}
