package errors

import (
	"errors"
	"fmt"
)

// LauncherError is the base interface for all launcher errors.
type LauncherError interface {
	error
	IsLauncherError() bool
}

// Compile-time verification that all error types implement LauncherError.
var (
	_ LauncherError = (*BackendNotFoundError)(nil)
	_ LauncherError = (*SpawnError)(nil)
	_ LauncherError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotReady indicates the backend did not become reachable within the
	// readiness timeout.
	ErrNotReady = errors.New("backend not ready")
)

// BackendNotFoundError indicates the backend binary was not found at any
// of the sidecar locations.
type BackendNotFoundError struct {
	SearchedPaths []string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("backend binary not found in: %v", e.SearchedPaths)
}

// IsLauncherError implements LauncherError.
func (e *BackendNotFoundError) IsLauncherError() bool { return true }

// SpawnError indicates the operating system failed to create the backend
// process.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start backend %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsLauncherError implements LauncherError.
func (e *SpawnError) IsLauncherError() bool { return true }

// ProcessError indicates the backend process exited abnormally after a
// successful spawn.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend process failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("backend process failed (exit %d): %s", e.ExitCode, e.Stderr)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsLauncherError implements LauncherError.
func (e *ProcessError) IsLauncherError() bool { return true }
