//go:build windows

package report

import (
	"os"

	"github.com/eveflipper/launcher/internal/config"
	"golang.org/x/sys/windows"
)

// NativeReporter shows a modal error message box with the fixed dialog
// title and an error icon. It blocks until the user dismisses it.
type NativeReporter struct{}

// Compile-time verification that NativeReporter implements config.Reporter.
var _ config.Reporter = (*NativeReporter)(nil)

// Fatal displays the message in a native message box. A message that
// cannot be encoded as UTF-16 (embedded NUL) falls back to the stderr
// line.
func (NativeReporter) Fatal(msg string) {
	text, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		NewStderrReporter(os.Stderr).Fatal(msg)

		return
	}

	title, err := windows.UTF16PtrFromString(DialogTitle)
	if err != nil {
		NewStderrReporter(os.Stderr).Fatal(msg)

		return
	}

	_, _ = windows.MessageBox(0, text, title, windows.MB_OK|windows.MB_ICONERROR)
}

// NewPlatformReporter returns the native dialog reporter.
func NewPlatformReporter() config.Reporter {
	return NativeReporter{}
}
