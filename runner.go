package launcher

import "github.com/eveflipper/launcher/internal/config"

// Runner defines the interface for backend process creation.
// Implement this to intercept the spawn for testing or mocking.
//
// The default implementation spawns a real subprocess. Custom runners
// can be injected via WithRunner; a recording runner lets tests verify
// the exact binary path and argument list without creating an OS
// process.
type Runner = config.Runner

// Handle is a live backend process owned by the launcher.
type Handle = config.Handle

// Reporter surfaces a fatal startup failure to the user. The built-in
// implementations are a native modal dialog on Windows and a labeled
// stderr line elsewhere; inject a custom one via WithReporter.
type Reporter = config.Reporter
