// internal/platform/ui/presenter.go
package ui

import "time"

// Presenter is the ambient status surface of asmx. It talks to the operator
// about what is running; the extracted assembly itself never routes through
// a presenter — that goes verbatim to stdout.
type Presenter interface {
	// Start announces the run: command, function, targets
	Start(info RunInfo)

	// Info shows an informative message
	Info(msg string)

	// Warning shows a warning
	Warning(msg string)

	// Error shows an error
	Error(msg string)

	// Finish closes the run with final stats
	Finish(stats RunStats)
}

// RunInfo describes the run being started.
type RunInfo struct {
	Command  string
	Function string
	Targets  []string
	TimeoutS int
}

// RunStats summarizes a finished run.
type RunStats struct {
	Blocks  int
	Failed  bool
	Elapsed time.Duration
}

// New returns a presenter: pterm-styled for interactive use, plain when raw
// mode is requested.
func New(raw bool) Presenter {
	if raw {
		return NewRawPresenter()
	}
	return NewPTermPresenter()
}
