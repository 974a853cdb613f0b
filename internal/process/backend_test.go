package process

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/eveflipper/launcher/internal/errors"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script in a temp dir and
// returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eve-flipper-backend")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755)
	require.NoError(t, err)

	return path
}

// TestArgs tests that the backend argument list is exactly the fixed
// two-element sequence.
func TestArgs(t *testing.T) {
	require.Equal(t, []string{"--port", "13370"}, Args())
}

// TestRunner_StartAndWait_CleanExit tests the happy path: spawn, get a
// PID, and reap a clean exit.
func TestRunner_StartAndWait_CleanExit(t *testing.T) {
	path := writeScript(t, "echo listening\nexit 0\n")

	runner := &Runner{}
	handle, err := runner.Start(context.Background(), path, Args())

	require.NoError(t, err)
	require.Greater(t, handle.PID(), 0)
	require.NoError(t, handle.Wait())
}

// TestRunner_Start_Unexecutable tests that spawning a present but
// unexecutable file fails with SpawnError.
func TestRunner_Start_Unexecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eve-flipper-backend")
	err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644)
	require.NoError(t, err)

	runner := &Runner{}
	_, err = runner.Start(context.Background(), path, Args())

	require.Error(t, err)

	var spawnErr *errors.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	require.Equal(t, path, spawnErr.Path)
}

// TestBackend_Wait_AbnormalExit tests that a nonzero backend exit yields
// ProcessError with the exit code and captured stderr.
func TestBackend_Wait_AbnormalExit(t *testing.T) {
	path := writeScript(t, "echo 'bind: address already in use' 1>&2\nexit 3\n")

	runner := &Runner{}
	handle, err := runner.Start(context.Background(), path, Args())
	require.NoError(t, err)

	err = handle.Wait()

	require.Error(t, err)

	var procErr *errors.ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, 3, procErr.ExitCode)
	require.Contains(t, procErr.Stderr, "bind: address already in use")
}

// TestBackend_StderrCallback tests that stderr lines reach the callback.
func TestBackend_StderrCallback(t *testing.T) {
	path := writeScript(t, "echo 'first line' 1>&2\necho 'second line' 1>&2\nexit 1\n")

	var (
		mu    sync.Mutex
		lines []string
	)

	runner := &Runner{
		StderrCallback: func(line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		},
	}

	handle, err := runner.Start(context.Background(), path, Args())
	require.NoError(t, err)

	require.Error(t, handle.Wait())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"first line", "second line"}, lines)
}

// TestBackend_Close_KillsProcess tests that Close terminates a live
// backend and that the shutdown is not reported as an error.
func TestBackend_Close_KillsProcess(t *testing.T) {
	path := writeScript(t, "sleep 30\n")

	runner := &Runner{}
	handle, err := runner.Start(context.Background(), path, Args())
	require.NoError(t, err)

	require.NoError(t, handle.Close())
	require.NoError(t, handle.Wait())
}

// TestBackend_Close_Idempotent tests that double Close is safe.
func TestBackend_Close_Idempotent(t *testing.T) {
	path := writeScript(t, "sleep 30\n")

	runner := &Runner{}
	handle, err := runner.Start(context.Background(), path, Args())
	require.NoError(t, err)

	require.NoError(t, handle.Close())
	require.NoError(t, handle.Close())
	require.NoError(t, handle.Wait())
}

// TestWaitReady_Listening tests readiness against a live listener.
func TestWaitReady_Listening(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer listener.Close()

	err = waitReady(context.Background(), listener.Addr().String(), time.Second)

	require.NoError(t, err)
}

// TestWaitReady_Timeout tests that readiness fails with ErrNotReady when
// nothing is listening.
func TestWaitReady_Timeout(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	err = waitReady(context.Background(), addr, 300*time.Millisecond)

	require.ErrorIs(t, err, errors.ErrNotReady)
}
