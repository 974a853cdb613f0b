package launcher

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingRunner records the spawn invocation instead of creating a
// process.
type recordingRunner struct {
	path   string
	args   []string
	handle *fakeHandle
}

func (r *recordingRunner) Start(_ context.Context, path string, args []string) (Handle, error) {
	r.path = path
	r.args = args
	r.handle = &fakeHandle{pid: 4242}

	return r.handle, nil
}

// fakeHandle is a no-op backend handle.
type fakeHandle struct {
	pid    int
	closed bool
}

func (h *fakeHandle) PID() int     { return h.pid }
func (h *fakeHandle) Wait() error  { return nil }
func (h *fakeHandle) Close() error { h.closed = true; return nil }

// countingReporter records every fatal report it receives.
type countingReporter struct {
	mu    sync.Mutex
	calls []string
}

func (r *countingReporter) Fatal(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, msg)
}

func (r *countingReporter) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

// backendFileName is the backend file name with the platform suffix.
func backendFileName() string {
	if runtime.GOOS == "windows" {
		return BackendBinary + ".exe"
	}

	return BackendBinary
}

// writeFakeBackend creates a fake backend script in dir with the given
// body and mode, and returns its path.
func writeFakeBackend(t *testing.T, dir, body string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, backendFileName())
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode)
	require.NoError(t, err)

	return path
}

// emptyPath points PATH at an empty directory so discovery cannot fall
// back to a real backend installed on the machine.
func emptyPath(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

// TestLaunch_SpawnArguments tests that the spawn receives the resolved
// path and exactly the two-element argument list.
func TestLaunch_SpawnArguments(t *testing.T) {
	baseDir := t.TempDir()
	fakeBackend := writeFakeBackend(t, baseDir, "exit 0\n", 0o755)

	runner := &recordingRunner{}

	backend, err := Launch(context.Background(),
		WithBaseDir(baseDir),
		WithRunner(runner),
	)

	require.NoError(t, err)
	require.Equal(t, 4242, backend.PID())
	require.Equal(t, fakeBackend, runner.path)
	require.Equal(t, []string{"--port", "13370"}, runner.args)

	require.NoError(t, backend.Close())
	require.True(t, runner.handle.closed)
}

// TestLaunch_BackendNotFound tests that resolution failure surfaces as
// BackendNotFoundError.
func TestLaunch_BackendNotFound(t *testing.T) {
	emptyPath(t)

	_, err := Launch(context.Background(), WithBaseDir(t.TempDir()))

	require.Error(t, err)

	var notFound *BackendNotFoundError
	require.ErrorAs(t, err, &notFound)
}

// TestRun_NotFoundReportedOnce tests the guarded fatal path for a
// missing backend: exit code 1, exactly one report, user-facing text.
func TestRun_NotFoundReportedOnce(t *testing.T) {
	emptyPath(t)

	reporter := &countingReporter{}

	code := Run(context.Background(),
		WithBaseDir(t.TempDir()),
		WithReporter(reporter),
	)

	require.Equal(t, 1, code)

	msgs := reporter.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "Backend binary not found")
	require.Contains(t, msgs[0], BackendBinary)
}

// TestRun_SpawnFailureReported tests the guarded fatal path for a
// present but unexecutable backend.
func TestRun_SpawnFailureReported(t *testing.T) {
	emptyPath(t)

	baseDir := t.TempDir()
	writeFakeBackend(t, baseDir, "exit 0\n", 0o644)

	reporter := &countingReporter{}

	code := Run(context.Background(),
		WithBaseDir(baseDir),
		WithReporter(reporter),
	)

	require.Equal(t, 1, code)

	msgs := reporter.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "Failed to start backend server.")
}

// TestRun_Success tests that a valid backend runs to completion with no
// fatal report and exit code 0.
func TestRun_Success(t *testing.T) {
	baseDir := t.TempDir()
	writeFakeBackend(t, baseDir, "exit 0\n", 0o755)

	reporter := &countingReporter{}

	code := Run(context.Background(),
		WithBaseDir(baseDir),
		WithReporter(reporter),
	)

	require.Equal(t, 0, code)
	require.Empty(t, reporter.messages())
}

// TestRun_BackendDiesAfterSpawn tests that a backend failing after a
// successful spawn yields exit code 1 but no dialog: the reporter is
// only for startup failures.
func TestRun_BackendDiesAfterSpawn(t *testing.T) {
	baseDir := t.TempDir()
	writeFakeBackend(t, baseDir, "echo 'fatal: no database' 1>&2\nexit 5\n", 0o755)

	reporter := &countingReporter{}

	code := Run(context.Background(),
		WithBaseDir(baseDir),
		WithReporter(reporter),
	)

	require.Equal(t, 1, code)
	require.Empty(t, reporter.messages())
}

// TestBackend_CloseIdempotent tests double Close on a live handle.
func TestBackend_CloseIdempotent(t *testing.T) {
	baseDir := t.TempDir()
	writeFakeBackend(t, baseDir, "sleep 30\n", 0o755)

	backend, err := Launch(context.Background(), WithBaseDir(baseDir))
	require.NoError(t, err)

	require.NoError(t, backend.Close())
	require.NoError(t, backend.Close())
	require.NoError(t, backend.Wait())
}
