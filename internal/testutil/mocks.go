// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync"

	"asmx/internal/core/domain"
)

// FakeToolchain implements ports.Toolchain by recording invocations instead
// of spawning processes. Tests use it to verify spawn counts, argument
// construction, and error propagation.
type FakeToolchain struct {
	mu sync.Mutex

	// Requests records every Extract call, in order
	Requests []domain.ExtractionRequest

	// Outputs maps alias -> stdout payload for successful invocations
	Outputs map[domain.Alias]string

	// Failures maps alias -> diagnostic text; a matching alias produces a
	// failed result carrying that text and ErrToolInvocation
	Failures map[domain.Alias]string

	// StartErr, when set, is returned as-is (process never started)
	StartErr error

	// Closed counts Close calls
	Closed int
}

// NewFakeToolchain creates an empty fake.
func NewFakeToolchain() *FakeToolchain {
	return &FakeToolchain{
		Outputs:  make(map[domain.Alias]string),
		Failures: make(map[domain.Alias]string),
	}
}

// Name returns a fixed fake name.
func (f *FakeToolchain) Name() string {
	return "fake-toolchain"
}

// Extract records the request and returns the configured canned result.
func (f *FakeToolchain) Extract(_ context.Context, req domain.ExtractionRequest) (*domain.ExtractionResult, error) {
	f.mu.Lock()
	f.Requests = append(f.Requests, req)
	f.mu.Unlock()

	if f.StartErr != nil {
		return nil, f.StartErr
	}

	if diag, ok := f.Failures[req.Target.Alias]; ok {
		return &domain.ExtractionResult{
			Request:     req,
			Diagnostics: diag,
			ExitCode:    1,
			Success:     false,
		}, domain.ErrToolInvocation
	}

	return &domain.ExtractionResult{
		Request:  req,
		Output:   f.Outputs[req.Target.Alias],
		ExitCode: 0,
		Success:  true,
	}, nil
}

// Close counts the call.
func (f *FakeToolchain) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed++
	return nil
}

// SpawnCount returns how many invocations were attempted.
func (f *FakeToolchain) SpawnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}
