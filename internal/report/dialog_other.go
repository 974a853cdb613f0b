//go:build !windows

package report

import (
	"os"

	"github.com/eveflipper/launcher/internal/config"
)

// NewPlatformReporter returns the stderr line reporter; platforms other
// than Windows get no native dialog.
func NewPlatformReporter() config.Reporter {
	return NewStderrReporter(os.Stderr)
}
