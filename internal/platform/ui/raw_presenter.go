// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const timeRound = 10 * time.Millisecond

// RawPresenter implements Presenter with plain text on stderr. Used for
// pipes, CI, and anywhere terminal styling is unwanted.
type RawPresenter struct{}

// NewRawPresenter creates a plain-text presenter.
func NewRawPresenter() *RawPresenter {
	return &RawPresenter{}
}

// Start announces the run.
func (p *RawPresenter) Start(info RunInfo) {
	msg := fmt.Sprintf("%s: %s on %s", info.Command, info.Function, strings.Join(info.Targets, ", "))
	if info.TimeoutS > 0 {
		msg += fmt.Sprintf(" (timeout %ds)", info.TimeoutS)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Info shows an informative message.
func (p *RawPresenter) Info(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// Warning shows a warning.
func (p *RawPresenter) Warning(msg string) {
	fmt.Fprintln(os.Stderr, "warning: "+msg)
}

// Error shows an error.
func (p *RawPresenter) Error(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
}

// Finish closes the run with final stats.
func (p *RawPresenter) Finish(stats RunStats) {
	if stats.Failed {
		fmt.Fprintf(os.Stderr, "extraction failed after %s\n", stats.Elapsed.Round(timeRound))
		return
	}
	fmt.Fprintf(os.Stderr, "%d block(s) in %s\n", stats.Blocks, stats.Elapsed.Round(timeRound))
}
