// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Alias is the short human-facing nickname for a compilation target.
// The set of valid aliases is closed: every alias must be registered in the
// target registry before it can be resolved. Resolving anything else fails
// with ErrUnknownAlias before any external process is spawned.
type Alias string

// Built-in aliases. Registered in internal/targets.
const (
	AliasARM64 Alias = "arm64"
	AliasX8664 Alias = "x86-64"
)

// Target is the fully resolved compilation target: the alias it was resolved
// from plus the fully-qualified triple the toolchain expects. Immutable; it
// exists only for the duration of one invocation.
type Target struct {
	// Alias is the nickname the target was resolved from
	Alias Alias

	// Triple is the fully-qualified <arch>-<vendor>-<os>-<abi> string
	Triple string
}

// Validate verifies the target carries a usable triple. Availability of the
// triple inside the toolchain itself is an external precondition and is not
// checked here.
func (t Target) Validate() error {
	if strings.TrimSpace(t.Triple) == "" {
		return fmt.Errorf("%w: alias %q", ErrEmptyTriple, t.Alias)
	}
	return nil
}

// String returns "alias (triple)" for banners and logs.
func (t Target) String() string {
	return fmt.Sprintf("%s (%s)", t.Alias, t.Triple)
}

// ExtractionRequest pairs the function identifier to inspect with the target
// to inspect it on. Created per invocation, consumed immediately, discarded
// once the corresponding result is produced.
type ExtractionRequest struct {
	// Function is the symbol name, interpreted by the toolchain's own
	// symbol resolution
	Function string

	// Target is the resolved compilation target
	Target Target
}

// NewExtractionRequest builds a request and validates its inputs.
func NewExtractionRequest(function string, target Target) (ExtractionRequest, error) {
	if strings.TrimSpace(function) == "" {
		return ExtractionRequest{}, ErrEmptyFunction
	}
	if err := target.Validate(); err != nil {
		return ExtractionRequest{}, err
	}
	return ExtractionRequest{Function: function, Target: target}, nil
}

// ExtractionResult is the captured outcome of one toolchain invocation.
// Owned transiently by the caller that requested it; the orchestrator never
// retains it.
type ExtractionResult struct {
	// Request is the request that produced this result
	Request ExtractionRequest

	// Output is the toolchain's stdout, verbatim
	Output string

	// Diagnostics is the toolchain's stderr, verbatim
	Diagnostics string

	// ExitCode is the process exit status (-1 if the process never started)
	ExitCode int

	// Success is true iff the process exited zero
	Success bool

	// Duration is how long the invocation took
	Duration time.Duration
}
