// Package server owns the listening side of the registry process.
//
// # Configuration
//
// The Config struct defines the bind host and port, SO_REUSEADDR, and how long
// in-flight requests may run after a stop signal.
//
// # Lifecycle
//
// Listen binds the socket (with address reuse on unix so a restart during
// development does not fail with "address in use"). Serve runs the Fiber app on
// that listener until its context is cancelled, then shuts down gracefully.
// The caller owns the context, which makes shutdown deterministic in tests:
//
//	ln, err := server.Listen(ctx, cfg.Server)
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	err = server.Serve(ctx, app, ln, cfg.Server.ShutdownTimeout())
package server
