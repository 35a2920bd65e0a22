// Package logging provides a minimal logging facade for the closure bridge.
//
// The Logger interface wraps the subset of log/slog the bridge needs. It is
// small on purpose so applications can route bridge diagnostics into their
// own logging stack or silence them in tests.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//	closure.SetLogger(logger)
//
// # Attributes
//
// Pointer and Handle format the opaque values that cross the boundary so
// log lines stay greppable:
//
//	logger.Warn(ctx, "release of unknown data", logging.Pointer("data", p))
package logging
