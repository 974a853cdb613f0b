package launcher

import "github.com/eveflipper/launcher/internal/errors"

// Re-export error types from internal package

// BackendNotFoundError indicates the backend binary was not found at any
// of the sidecar locations.
type BackendNotFoundError = errors.BackendNotFoundError

// SpawnError indicates the operating system failed to create the backend
// process.
type SpawnError = errors.SpawnError

// ProcessError indicates the backend process exited abnormally after a
// successful spawn.
type ProcessError = errors.ProcessError

// LauncherError is the base interface for all launcher errors.
type LauncherError = errors.LauncherError

// Re-export sentinel errors from internal package.
var (
	// ErrNotReady indicates the backend did not become reachable within the
	// readiness timeout.
	ErrNotReady = errors.ErrNotReady
)
