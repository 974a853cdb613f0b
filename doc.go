// Package launcher boots the EVE Flipper desktop shell: it locates the
// co-located eve-flipper-backend executable, spawns it bound to TCP port
// 13370, and surfaces fatal startup failures through a native error
// dialog (Windows) or a labeled line on standard error (everywhere else).
//
// # Basic Usage
//
// The shell entry point runs the whole guarded sequence:
//
//	func main() {
//	    os.Exit(launcher.Run(context.Background()))
//	}
//
// Run resolves the backend, spawns it with the fixed argument list
// "--port 13370", and parks until the backend exits. Any startup failure
// is reported to the user exactly once and turns into exit status 1.
// There is no retry and no degraded mode: the shell's entire purpose is
// to host the backend.
//
// # Library Usage
//
// Launch returns the live handle instead of parking:
//
//	backend, err := launcher.Launch(ctx,
//	    launcher.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    // BackendNotFoundError or SpawnError; both are terminal.
//	}
//	defer backend.Close()
//
// The handle owns the backend's output streams; both are drained into
// the configured logger. Closing the handle kills the backend — the
// child never deliberately outlives the shell.
//
// # Discovery
//
// The backend is expected as a sidecar: the shell's own directory first,
// then a platform-qualified subdirectory (<GOOS>-<GOARCH>), then PATH.
// An explicit path can be forced with WithBackendPath.
package launcher
