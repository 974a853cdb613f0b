package sidecar

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/eveflipper/launcher/internal/errors"
)

// BinaryName is the logical name of the backend executable.
const BinaryName = "eve-flipper-backend"

// Config holds configuration for backend discovery.
type Config struct {
	// BackendPath is an explicit backend path that skips the sidecar search.
	// If empty, discovery searches the executable's directory, a
	// platform-qualified subdirectory, and PATH.
	BackendPath string

	// BaseDir overrides the directory treated as the application's own
	// location. If empty, the directory of the running executable is used.
	BaseDir string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Locator locates the backend binary.
type Locator interface {
	// Locate resolves the backend binary using the sidecar convention.
	// Returns the path to the binary or a BackendNotFoundError.
	Locate() (string, error)
}

// locator implements the Locator interface.
type locator struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that locator implements Locator.
var _ Locator = (*locator)(nil)

// NewLocator creates a new backend locator with the given configuration.
func NewLocator(cfg *Config) Locator {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &locator{
		cfg: cfg,
		log: log.With("component", "sidecar"),
	}
}

// Locate resolves the backend binary using the sidecar convention.
//
// Existence is checked with os.Stat only: a present but unexecutable file
// still resolves, and the spawn is where that failure surfaces.
func (l *locator) Locate() (string, error) {
	// If explicit path provided, use it and only it
	if l.cfg.BackendPath != "" {
		l.log.Debug("Using explicit backend path", "backend_path", l.cfg.BackendPath)

		if _, err := os.Stat(l.cfg.BackendPath); err == nil {
			return l.cfg.BackendPath, nil
		}

		l.log.Debug("Explicit backend path not found", "backend_path", l.cfg.BackendPath)

		return "", &errors.BackendNotFoundError{SearchedPaths: []string{l.cfg.BackendPath}}
	}

	baseDir, err := l.baseDir()
	if err != nil {
		l.log.Error("Failed to resolve application directory", "error", err)

		return "", &errors.BackendNotFoundError{SearchedPaths: []string{"<unknown executable directory>"}}
	}

	searchedPaths := make([]string, 0, 3)

	// Sidecar convention: same directory as the shell, then a
	// platform/architecture-qualified subdirectory.
	candidates := []string{
		filepath.Join(baseDir, binaryFileName()),
		filepath.Join(baseDir, runtime.GOOS+"-"+runtime.GOARCH, binaryFileName()),
	}

	for _, path := range candidates {
		searchedPaths = append(searchedPaths, path)
		l.log.Debug("Checking sidecar path", "path", path)

		if _, err := os.Stat(path); err == nil {
			l.log.Debug("Found backend at sidecar path", "path", path)

			return path, nil
		}
	}

	// Fall back to PATH
	l.log.Debug("Searching for backend in PATH", "binary", BinaryName)

	if path, err := exec.LookPath(BinaryName); err == nil {
		l.log.Debug("Found backend in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	l.log.Warn("Backend binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.BackendNotFoundError{SearchedPaths: searchedPaths}
}

// baseDir returns the directory treated as the application's own location.
func (l *locator) baseDir() (string, error) {
	if l.cfg.BaseDir != "" {
		return l.cfg.BaseDir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Dir(exe), nil
}

// binaryFileName returns the backend file name with the platform suffix.
func binaryFileName() string {
	if runtime.GOOS == "windows" {
		return BinaryName + ".exe"
	}

	return BinaryName
}
