// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"

	"asmx/internal/adapters/output"
	"asmx/internal/core/domain"
	"asmx/internal/core/ports"
	"asmx/internal/platform/logx"
	"asmx/internal/platform/registry"
)

// Orchestrator sequences assembly extractions: resolve the alias, invoke the
// toolchain, emit the captured output. Execution is strictly linear and
// synchronous; nothing is shared across invocations and nothing outlives one
// call.
type Orchestrator struct {
	toolchain ports.Toolchain
	resolver  *registry.TargetRegistry
	writer    *output.BlockWriter
	logger    logx.Logger
}

// OrchestratorOptions configures an Orchestrator.
type OrchestratorOptions struct {
	Toolchain ports.Toolchain
	Resolver  *registry.TargetRegistry
	Writer    *output.BlockWriter
	Logger    logx.Logger
}

// NewOrchestrator creates an Orchestrator from options.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	return &Orchestrator{
		toolchain: opts.Toolchain,
		resolver:  opts.Resolver,
		writer:    opts.Writer,
		logger:    opts.Logger.With("component", "orchestrator"),
	}
}

// ExtractOne performs one single-target extraction: resolve the alias, print
// the banner, run the toolchain, emit its stdout verbatim. On failure the
// toolchain's diagnostic output is emitted instead and the error returned;
// there is no retry.
func (o *Orchestrator) ExtractOne(ctx context.Context, alias domain.Alias, function string) (*domain.ExtractionResult, error) {
	target, err := o.resolver.Resolve(alias)
	if err != nil {
		return nil, err
	}

	req, err := domain.NewExtractionRequest(function, target)
	if err != nil {
		return nil, err
	}

	if err := o.writer.WriteBanner(req); err != nil {
		return nil, err
	}

	o.logger.Debug("extraction starting", "function", function, "target", target.Triple)

	result, err := o.toolchain.Extract(ctx, req)
	if err != nil {
		if result != nil {
			// Invocation failures are operator-actionable; surface the
			// diagnostic text verbatim.
			if werr := o.writer.WriteDiagnostics(result); werr != nil {
				o.logger.Warn("failed to emit diagnostics", "error", werr.Error())
			}
		}
		return result, err
	}

	if err := o.writer.WriteOutput(result); err != nil {
		return result, err
	}

	o.logger.Debug("extraction finished",
		"function", function,
		"target", target.Triple,
		"duration", result.Duration.String(),
	)

	return result, nil
}

// Compare runs one extraction per alias, in the order given by the caller,
// emitting the separator between consecutive blocks only. Ordering is the
// caller's contract: output blocks appear exactly in alias order so a human
// diffing two architectures always sees the same layout.
//
// Policy on failure: fail-fast. The first failing extraction stops the
// sequence; a half comparison is not useful, and the operator can re-run
// with a narrower alias set. Identical requests always re-invoke the
// toolchain: no caching, no deduplication.
func (o *Orchestrator) Compare(ctx context.Context, aliases []domain.Alias, function string) error {
	for i, alias := range aliases {
		if i > 0 {
			if err := o.writer.WriteSeparator(); err != nil {
				return err
			}
		}

		if _, err := o.ExtractOne(ctx, alias, function); err != nil {
			return err
		}
	}

	return nil
}
