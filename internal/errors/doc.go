// Package errors defines the launcher's error taxonomy.
//
// All launcher errors implement the LauncherError interface, allowing
// callers to distinguish launcher failures from other errors. The two
// startup failures are terminal for the whole application:
//
//   - BackendNotFoundError: the backend binary could not be located at
//     any sidecar location.
//   - SpawnError: the operating system refused to create the backend
//     process.
//
// ProcessError reports a backend that died after a successful spawn and
// is produced by waiting on the process handle, not by startup.
package errors
