package launcher

import (
	"log/slog"
	"time"

	"github.com/eveflipper/launcher/internal/config"
)

// Option configures the launcher using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for launcher and backend output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithBackendPath sets an explicit path to the backend binary, skipping
// the sidecar search.
func WithBackendPath(path string) Option {
	return func(o *config.Options) {
		o.BackendPath = path
	}
}

// WithBaseDir overrides the directory treated as the application's own
// location during sidecar discovery. Intended for tests.
func WithBaseDir(dir string) Option {
	return func(o *config.Options) {
		o.BaseDir = dir
	}
}

// WithRunner overrides how the backend process is created. Tests inject
// a recording runner here to observe the spawn without creating a
// process.
func WithRunner(runner Runner) Option {
	return func(o *config.Options) {
		o.Runner = runner
	}
}

// WithReporter overrides how fatal startup failures are surfaced.
// If not set, the platform reporter is used (native dialog on Windows,
// a labeled stderr line elsewhere).
func WithReporter(reporter Reporter) Option {
	return func(o *config.Options) {
		o.Reporter = reporter
	}
}

// WithStderrCallback registers a callback receiving each line of the
// backend's stderr output as it arrives.
func WithStderrCallback(fn func(string)) Option {
	return func(o *config.Options) {
		o.StderrCallback = fn
	}
}

// WithWaitReady enables polling the backend's loopback port after a
// successful spawn until it accepts a connection. A zero timeout uses
// the default. Off by default: the launcher only detects spawn failure,
// not bind failure inside the backend, unless asked to.
func WithWaitReady(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.WaitReady = true
		o.ReadyTimeout = timeout
	}
}
