// Package sidecar locates the eve-flipper-backend binary bundled
// alongside the shell.
//
// The Locator interface resolves the backend using the sidecar
// convention:
//
//	locator := sidecar.NewLocator(&sidecar.Config{
//	    Logger: slog.Default(),
//	})
//	path, err := locator.Locate()
//
// Discovery searches in the following order:
//  1. Explicit path in Config.BackendPath (if provided)
//  2. The directory containing the running executable
//  3. A platform-qualified subdirectory (<GOOS>-<GOARCH>)
//  4. System PATH
//
// On Windows the platform suffix (.exe) is appended to the binary name.
// Discovery checks existence only; an unexecutable file resolves
// successfully and fails later at spawn time.
package sidecar
