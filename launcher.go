package launcher

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime"

	"github.com/eveflipper/launcher/internal/config"
	"github.com/eveflipper/launcher/internal/process"
	"github.com/eveflipper/launcher/internal/report"
	"github.com/eveflipper/launcher/internal/sidecar"
	"github.com/oklog/ulid/v2"
)

// BackendBinary is the logical name of the backend executable the shell
// launches. On Windows the platform suffix (.exe) is appended during
// discovery.
const BackendBinary = sidecar.BinaryName

// Port is the TCP port the backend is told to bind. Fixed in this
// version; not user-configurable.
const Port = process.Port

// Backend is a handle to the spawned backend process.
type Backend struct {
	handle config.Handle
}

// PID returns the operating system process identifier of the backend.
func (b *Backend) PID() int {
	return b.handle.PID()
}

// Wait blocks until the backend exits. An abnormal exit is reported as
// ProcessError carrying the exit code and captured stderr; a shutdown
// initiated by Close is not an error.
func (b *Backend) Wait() error {
	return b.handle.Wait()
}

// Close kills the backend. The backend is owned by the shell and never
// deliberately outlives it. Safe to call multiple times.
func (b *Backend) Close() error {
	return b.handle.Close()
}

// Launch resolves the backend binary co-located with the shell and
// spawns it bound to port 13370.
//
// The sequence is linear with no retry: resolution failure returns
// BackendNotFoundError, spawn failure returns SpawnError, and either is
// terminal for the application. On success the returned handle owns the
// child process and its output streams.
func Launch(ctx context.Context, opts ...Option) (*Backend, error) {
	return launch(ctx, applyOptions(opts))
}

func launch(ctx context.Context, options *config.Options) (*Backend, error) {
	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	// Tag every line of this run, shell and backend alike
	log = log.With("run_id", ulid.Make().String())

	locator := sidecar.NewLocator(&sidecar.Config{
		BackendPath: options.BackendPath,
		BaseDir:     options.BaseDir,
		Logger:      log,
	})

	path, err := locator.Locate()
	if err != nil {
		return nil, fmt.Errorf("resolve backend: %w", err)
	}

	runner := options.Runner
	if runner == nil {
		runner = &process.Runner{
			Log:            log,
			StderrCallback: options.StderrCallback,
		}
	}

	handle, err := runner.Start(ctx, path, process.Args())
	if err != nil {
		return nil, fmt.Errorf("spawn backend: %w", err)
	}

	log.Info("Backend launched", "pid", handle.PID(), "path", path)

	if options.WaitReady {
		if err := process.WaitReady(ctx, options.ReadyTimeout); err != nil {
			_ = handle.Close()
			_ = handle.Wait()

			return nil, fmt.Errorf("backend readiness: %w", err)
		}

		log.Info("Backend ready", "port", process.Port)
	}

	return &Backend{handle: handle}, nil
}

// Run executes the guarded startup sequence and parks on the backend.
//
// On startup failure it reports exactly once through the configured
// Reporter and returns 1. On success it owns the backend until the child
// exits: a clean backend exit returns 0, an abnormal one returns 1 after
// logging. Failures after a successful spawn are logged, never dialoged.
func Run(ctx context.Context, opts ...Option) int {
	options := applyOptions(opts)

	reporter := options.Reporter
	if reporter == nil {
		reporter = report.NewPlatformReporter()
	}

	// First failure wins; no cascading double-report.
	guard := report.NewOnce(reporter)

	backend, err := launch(ctx, options)
	if err != nil {
		guard.Fatal(fatalMessage(err))

		return 1
	}

	defer backend.Close()

	if err := backend.Wait(); err != nil {
		return 1
	}

	return 0
}

// fatalMessage renders a startup failure the way the shell presents it
// to the user.
func fatalMessage(err error) string {
	var notFound *BackendNotFoundError
	if stderrors.As(err, &notFound) {
		return fmt.Sprintf(
			"Backend binary not found. Run from the folder that contains %s.\n\n%v",
			binaryDisplayName(), notFound,
		)
	}

	return fmt.Sprintf("Failed to start backend server.\n\n%v", err)
}

// binaryDisplayName is the backend file name as the user sees it on disk.
func binaryDisplayName() string {
	if runtime.GOOS == "windows" {
		return BackendBinary + ".exe"
	}

	return BackendBinary
}
