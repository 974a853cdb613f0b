// Package config provides configuration types for the launcher.
package config

import (
	"log/slog"
	"time"
)

// Options holds the resolved launcher configuration.
//
// Fields are set by the root package's functional options. The zero value
// is valid: silent logging, sidecar discovery relative to the running
// executable, the real process runner and the platform error reporter.
type Options struct {
	// Logger receives launcher and backend output. If nil, logging is
	// disabled (silent operation).
	Logger *slog.Logger

	// BackendPath is an explicit backend binary path that skips the
	// sidecar search. If empty, discovery searches the executable's own
	// directory, a platform-qualified subdirectory, and PATH.
	BackendPath string

	// BaseDir overrides the directory treated as the application's own
	// location during sidecar discovery. Used by tests.
	BaseDir string

	// Runner overrides how the backend process is created. If nil, the
	// real subprocess runner is used. Tests inject a recording double
	// here to observe the spawn without creating a process.
	Runner Runner

	// Reporter overrides how fatal startup failures are surfaced. If
	// nil, the platform reporter is used (native dialog on Windows,
	// a labeled stderr line elsewhere).
	Reporter Reporter

	// StderrCallback receives each line of the backend's stderr output
	// as it arrives. Optional.
	StderrCallback func(string)

	// WaitReady enables polling the backend's loopback port after a
	// successful spawn until it accepts a connection. Off by default:
	// the launcher does not detect bind failures inside the backend
	// unless asked to.
	WaitReady bool

	// ReadyTimeout bounds the readiness poll. Zero means DefaultReadyTimeout.
	ReadyTimeout time.Duration
}

// DefaultReadyTimeout is the readiness poll bound used when Options.ReadyTimeout
// is zero.
const DefaultReadyTimeout = 10 * time.Second
