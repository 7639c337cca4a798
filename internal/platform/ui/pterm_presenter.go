// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// PTermPresenter implements Presenter using pterm for colors and symbols.
// Everything it prints goes to stderr so stdout stays byte-clean for the
// extracted assembly.
type PTermPresenter struct {
	info    pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	err     pterm.PrefixPrinter
}

// NewPTermPresenter creates a pterm-backed presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		info:    *pterm.Info.WithWriter(os.Stderr),
		warning: *pterm.Warning.WithWriter(os.Stderr),
		err:     *pterm.Error.WithWriter(os.Stderr),
	}
}

// Start announces the run.
func (p *PTermPresenter) Start(info RunInfo) {
	targets := strings.Join(info.Targets, ", ")
	msg := fmt.Sprintf("%s: %s on %s", info.Command, pterm.Cyan(info.Function), pterm.Yellow(targets))
	if info.TimeoutS > 0 {
		msg += fmt.Sprintf(" (timeout %ds)", info.TimeoutS)
	}
	p.info.Println(msg)
}

// Info shows an informative message.
func (p *PTermPresenter) Info(msg string) {
	p.info.Println(msg)
}

// Warning shows a warning.
func (p *PTermPresenter) Warning(msg string) {
	p.warning.Println(msg)
}

// Error shows an error.
func (p *PTermPresenter) Error(msg string) {
	p.err.Println(msg)
}

// Finish closes the run with final stats.
func (p *PTermPresenter) Finish(stats RunStats) {
	if stats.Failed {
		p.err.Printfln("extraction failed after %s", stats.Elapsed.Round(timeRound))
		return
	}
	p.info.Printfln("%d block(s) in %s", stats.Blocks, stats.Elapsed.Round(timeRound))
}
