package config

import "context"

// Runner defines the interface for backend process creation.
// Implement this to intercept the spawn for testing or mocking.
//
// The default implementation spawns a real subprocess. Custom runners
// can be injected via Options.Runner; a recording runner lets tests
// verify the exact binary path and argument list without creating an
// OS process.
type Runner interface {
	// Start creates the backend process from the resolved binary path
	// and argument list. It returns a live handle or an error; it never
	// blocks beyond OS process creation.
	Start(ctx context.Context, path string, args []string) (Handle, error)
}

// Handle is a live backend process owned by the launcher.
type Handle interface {
	// PID returns the operating system process identifier, or 0 if the
	// process is not running.
	PID() int

	// Wait blocks until the process exits and returns a ProcessError if
	// it exited abnormally. Wait after Close returns nil.
	Wait() error

	// Close terminates the process. It's safe to call Close multiple
	// times or on an already-terminated process.
	Close() error
}

// Reporter surfaces a fatal startup failure to the user. Implementations
// are a native modal dialog on Windows and a labeled stderr line
// elsewhere.
type Reporter interface {
	// Fatal presents the message. It blocks until the user dismisses the
	// dialog on platforms that have one, and must not panic.
	Fatal(msg string)
}
