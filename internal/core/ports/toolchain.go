// internal/core/ports/toolchain.go
package ports

import (
	"context"

	"asmx/internal/core/domain"
)

// Toolchain is the port for the underlying inspection toolchain. The
// orchestrator depends on nothing else from it: it constructs a request,
// gets back captured output and an exit status, and never interprets the
// output. Tests substitute a recording fake for this interface.
type Toolchain interface {
	// Name returns the toolchain name (e.g. "cargo-asm")
	Name() string

	// Extract runs one synchronous invocation for the given request.
	// On a nonzero exit it returns the partial result (diagnostics
	// populated) together with a non-nil error; the caller decides how
	// to surface it. It must never retry.
	Extract(ctx context.Context, req domain.ExtractionRequest) (*domain.ExtractionResult, error)

	// Close releases any resources held by the toolchain (running
	// subprocess, pipes). Safe to call multiple times.
	Close() error
}

// InitializableToolchain is implemented by toolchains that can verify their
// environment up front (binary present in PATH, version probe). Optional,
// checked by type assertion.
type InitializableToolchain interface {
	Toolchain

	// Initialize resolves and verifies the underlying binary
	Initialize(ctx context.Context) error
}
