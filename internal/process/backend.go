package process

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/eveflipper/launcher/internal/config"
	"github.com/eveflipper/launcher/internal/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// Port is the TCP port the backend is told to bind. Fixed in this
	// version; not user-configurable.
	Port = 13370

	// maxStderrBufferSize caps the backend stderr retained for crash
	// reporting. Lines keep flowing to the logger and the callback after
	// the cap; the buffer just stops growing.
	maxStderrBufferSize = 1 << 20 // 1MB
)

// Args returns the fixed argument list passed to the backend.
func Args() []string {
	return []string{"--port", strconv.Itoa(Port)}
}

// Runner spawns the real backend subprocess.
type Runner struct {
	// Log receives backend output and lifecycle events. If nil, logging
	// is disabled.
	Log *slog.Logger

	// StderrCallback receives each backend stderr line as it arrives.
	// Optional.
	StderrCallback func(string)
}

// Compile-time verification that Runner implements the config.Runner interface.
var _ config.Runner = (*Runner)(nil)

// Start spawns the backend process with the given binary path and
// argument list.
//
// Stdout and stderr pipes are created before the spawn and retained by
// the returned handle for the life of the process; both are drained into
// the logger. Returns SpawnError if the operating system fails to create
// the process.
func (r *Runner) Start(ctx context.Context, path string, args []string) (config.Handle, error) {
	log := r.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "backend")

	//nolint:gosec // G204: launching the resolved sidecar binary is the launcher's purpose
	cmd := exec.CommandContext(ctx, path, args...)
	setSysProcAttr(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Error("Failed to create stdout pipe", "error", err)

		return nil, &errors.SpawnError{Path: path, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		log.Error("Failed to create stderr pipe", "error", err)

		return nil, &errors.SpawnError{Path: path, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start backend process", "error", err)

		return nil, &errors.SpawnError{Path: path, Err: err}
	}

	log.Info("Backend process started", "pid", cmd.Process.Pid, "path", path, "args", args)

	b := &Backend{
		log:            log,
		cmd:            cmd,
		stdout:         stdout,
		stderr:         stderr,
		stderrCallback: r.StderrCallback,
	}
	b.drain()

	return b, nil
}

// Backend is a live backend process owned by the launcher.
//
// The output pipes belong to the handle; dropping them would signal
// end-of-output to the child, so they are held and drained until the
// process exits.
type Backend struct {
	log            *slog.Logger
	cmd            *exec.Cmd
	stdout         io.ReadCloser
	stderr         io.ReadCloser
	stderrCallback func(string)

	group *errgroup.Group

	mu        sync.Mutex // protects closing and stderrBuf
	closing   bool
	stderrBuf strings.Builder

	waitOnce sync.Once
	waitErr  error
}

// Compile-time verification that Backend implements the config.Handle interface.
var _ config.Handle = (*Backend)(nil)

// drain streams the backend's output into the logger. Stderr lines are
// additionally buffered (capped) for crash reporting. Both pipes must be
// read to completion before the process is reaped.
func (b *Backend) drain() {
	b.group = new(errgroup.Group)

	b.group.Go(func() error {
		scanner := bufio.NewScanner(b.stdout)
		for scanner.Scan() {
			b.log.Info(scanner.Text())
		}

		// Scanner errors are expected when the process is killed
		if err := scanner.Err(); err != nil {
			b.log.Debug("Stdout scanner error", "error", err)
		}

		return nil
	})

	b.group.Go(func() error {
		scanner := bufio.NewScanner(b.stderr)
		for scanner.Scan() {
			line := scanner.Text()
			b.log.Warn(line)

			b.mu.Lock()

			if b.stderrBuf.Len() < maxStderrBufferSize {
				if b.stderrBuf.Len() > 0 {
					b.stderrBuf.WriteString("\n")
				}

				b.stderrBuf.WriteString(line)
			}

			b.mu.Unlock()

			if b.stderrCallback != nil {
				b.stderrCallback(line)
			}
		}

		if err := scanner.Err(); err != nil {
			b.log.Debug("Stderr scanner error", "error", err)
		}

		return nil
	})
}

// PID returns the operating system process identifier, or 0 if the
// process never started.
func (b *Backend) PID() int {
	if b.cmd.Process == nil {
		return 0
	}

	return b.cmd.Process.Pid
}

// Wait blocks until the backend exits and reports an abnormal exit as
// ProcessError with the captured stderr. A shutdown initiated by Close
// is not an error. Safe to call multiple times.
func (b *Backend) Wait() error {
	b.waitOnce.Do(func() {
		b.waitErr = b.wait()
	})

	return b.waitErr
}

func (b *Backend) wait() error {
	// Pipes must be fully read before Wait.
	// See: https://pkg.go.dev/os/exec#Cmd.StdoutPipe
	_ = b.group.Wait()

	err := b.cmd.Wait()
	if err == nil {
		b.log.Info("Backend process exited cleanly")

		return nil
	}

	b.mu.Lock()
	isClosing := b.closing
	stderrOutput := b.stderrBuf.String()
	b.mu.Unlock()

	if isClosing {
		b.log.Debug("Backend process terminated during shutdown")

		return nil
	}

	exitCode := -1

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	b.log.Error("Backend process exited with error", "exit_code", exitCode, "stderr", stderrOutput)

	return &errors.ProcessError{
		ExitCode: exitCode,
		Stderr:   stderrOutput,
		Err:      err,
	}
}

// Close kills the backend process. The backend is owned by the shell and
// must not outlive it; the shell kills it on exit rather than leaving the
// outcome to process-group defaults. Safe to call multiple times or on an
// already-terminated process.
func (b *Backend) Close() error {
	b.mu.Lock()

	if b.closing {
		b.mu.Unlock()

		return nil
	}

	b.closing = true
	b.mu.Unlock()

	if b.cmd.Process != nil {
		b.log.Debug("Killing backend process", "pid", b.cmd.Process.Pid)

		if err := b.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("kill backend process (pid %d): %w", b.cmd.Process.Pid, err)
		}
	}

	return nil
}
