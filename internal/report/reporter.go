package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/eveflipper/launcher/internal/config"
)

const (
	// DialogTitle is the fixed title of the native error dialog.
	DialogTitle = "EVE Flipper"

	// stderrLabel prefixes fatal error lines on platforms without a
	// native dialog. The message follows the label verbatim.
	stderrLabel = "EVE Flipper error: "
)

// StderrReporter writes fatal errors as a single labeled line on a
// stream. It is the reporter for platforms without native dialog support
// and the test seam for the fatal path.
type StderrReporter struct {
	w io.Writer
}

// Compile-time verification that both reporters implement config.Reporter.
var (
	_ config.Reporter = (*StderrReporter)(nil)
	_ config.Reporter = (*Once)(nil)
)

// NewStderrReporter creates a reporter writing to the given stream.
func NewStderrReporter(w io.Writer) *StderrReporter {
	return &StderrReporter{w: w}
}

// Fatal writes the message on one line after the fixed label.
func (r *StderrReporter) Fatal(msg string) {
	fmt.Fprintf(r.w, "%s%s\n", stderrLabel, msg)
}

// Once wraps a Reporter so that only the first fatal report is
// delivered. First failure wins; there is no cascading double-report.
type Once struct {
	inner config.Reporter
	once  sync.Once
}

// NewOnce wraps the given reporter in a once-guard.
func NewOnce(inner config.Reporter) *Once {
	return &Once{inner: inner}
}

// Fatal delivers the message to the wrapped reporter on the first call
// and drops every subsequent one.
func (o *Once) Fatal(msg string) {
	o.once.Do(func() {
		o.inner.Fatal(msg)
	})
}
