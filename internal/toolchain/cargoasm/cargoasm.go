// Package cargoasm implements the cargo-asm inspection toolchain.
// It executes `cargo asm` as a subprocess with a fixed set of
// output-shaping flags and captures the resulting disassembly verbatim.
package cargoasm

import (
	"context"
	"io"
	"os/exec"
	"sync"
	"time"

	"asmx/internal/core/domain"
	"asmx/internal/platform/errors"
	"asmx/internal/platform/logx"
)

const toolchainName = "cargo-asm"

// installInstructions is shown when the binary is missing; installation
// itself is a prerequisite supplied by the environment, not managed here.
const installInstructions = "cargo install cargo-show-asm; rustup target add <triple>"

// CargoASM implements ports.Toolchain and ports.InitializableToolchain.
// One instance handles any number of sequential extractions; it spawns
// exactly one subprocess per Extract call and never retries.
type CargoASM struct {
	logger   logx.Logger
	execPath string        // path to the cargo binary
	crateDir string        // working directory of the crate being inspected
	timeout  time.Duration // bounded wait per invocation (0 = none)

	// Process management
	mu  sync.Mutex
	cmd *exec.Cmd
}

// Config contains configuration for CargoASM.
type Config struct {
	ExecPath string        // cargo binary (resolved via LookPath in Initialize)
	CrateDir string        // directory the subprocess runs in ("" = current)
	Timeout  time.Duration // per-invocation timeout (0 = run to completion)
}

// New creates a CargoASM toolchain with the given configuration.
func New(logger logx.Logger, cfg Config) *CargoASM {
	if cfg.ExecPath == "" {
		cfg.ExecPath = "cargo"
	}

	return &CargoASM{
		logger:   logger.With("toolchain", toolchainName),
		execPath: cfg.ExecPath,
		crateDir: cfg.CrateDir,
		timeout:  cfg.Timeout,
	}
}

// Name returns the toolchain name.
func (c *CargoASM) Name() string {
	return toolchainName
}

// buildArgs constructs the fixed argument list: library scope,
// fully-qualified names, simplified output, the resolved triple, then the
// function identifier.
func (c *CargoASM) buildArgs(req domain.ExtractionRequest) []string {
	return []string{
		"asm",
		"--lib",
		"--full-name",
		"--simplify",
		"--target", req.Target.Triple,
		req.Function,
	}
}

// Extract runs one synchronous cargo-asm invocation. The caller is blocked
// until the subprocess exits. Stdout is captured whole and returned
// unmodified; stderr is read by a background goroutine so a chatty toolchain
// cannot block the pipe. On a nonzero exit the returned result carries the
// diagnostic output verbatim alongside a non-nil error.
func (c *CargoASM) Extract(ctx context.Context, req domain.ExtractionRequest) (*domain.ExtractionResult, error) {
	startTime := time.Now()
	args := c.buildArgs(req)

	c.logger.Info("executing toolchain",
		"exec_path", c.execPath,
		"args", args,
		"dir", c.crateDir,
	)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.execPath, args...)
	cmd.Dir = c.crateDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stdout pipe")
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stderr pipe")
	}

	// Store command reference for Close()
	c.mu.Lock()
	c.cmd = cmd
	c.mu.Unlock()

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, errors.Wrapf(domain.ErrToolNotFound,
				"%s (install: %s)", c.execPath, installInstructions)
		}
		return nil, errors.Wrapf(domain.ErrToolInvocation, "failed to start %s: %v", c.execPath, err)
	}

	c.logger.Debug("subprocess started", "pid", cmd.Process.Pid)

	// Read stderr in background to prevent blocking
	var stderrBytes []byte
	var stderrWg sync.WaitGroup
	stderrWg.Add(1)

	go func() {
		defer stderrWg.Done()
		data, readErr := io.ReadAll(stderr)
		if readErr != nil {
			c.logger.Warn("error reading stderr", "error", readErr.Error())
		}
		stderrBytes = data
	}()

	stdoutBytes, readErr := io.ReadAll(stdout)
	if readErr != nil {
		c.logger.Warn("error reading stdout", "error", readErr.Error())
	}

	waitErr := cmd.Wait()
	stderrWg.Wait()

	result := &domain.ExtractionResult{
		Request:     req,
		Output:      string(stdoutBytes),
		Diagnostics: string(stderrBytes),
		ExitCode:    cmd.ProcessState.ExitCode(),
		Success:     waitErr == nil,
		Duration:    time.Since(startTime),
	}

	if waitErr != nil {
		c.logger.Warn("subprocess exited with error",
			"error", waitErr.Error(),
			"exit_code", result.ExitCode,
			"duration", result.Duration.String(),
		)

		if ctx.Err() != nil {
			return result, errors.Wrapf(errors.ErrTimeout, "%s %s", c.execPath, req.Function)
		}

		// The diagnostic text is the payload; surface it verbatim through
		// the result, never interpret or retry.
		return result, errors.Wrapf(domain.ErrToolInvocation,
			"%s exited with code %d", c.execPath, result.ExitCode)
	}

	c.logger.Info("toolchain invocation completed",
		"function", req.Function,
		"target", req.Target.Triple,
		"duration", result.Duration.String(),
	)

	return result, nil
}

// Initialize verifies the cargo binary exists and is executable.
// Implements ports.InitializableToolchain.
func (c *CargoASM) Initialize(ctx context.Context) error {
	c.logger.Debug("initializing toolchain", "exec_path", c.execPath)

	execPath, err := exec.LookPath(c.execPath)
	if err != nil {
		return errors.Wrapf(domain.ErrToolNotFound,
			"%s not in PATH (install: %s)", c.execPath, installInstructions)
	}

	c.execPath = execPath
	c.logger.Debug("found binary", "path", execPath)

	// Version probe, best-effort
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, c.execPath, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		c.logger.Debug("version check failed (non-fatal)", "error", err.Error())
	} else {
		c.logger.Debug("toolchain version", "version", string(output))
	}

	return nil
}

// Close terminates a still-running subprocess, if any.
// Safe to call multiple times.
func (c *CargoASM) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cmd != nil && c.cmd.Process != nil {
		state := c.cmd.ProcessState
		if state == nil || !state.Exited() {
			if err := c.cmd.Process.Kill(); err != nil {
				c.logger.Warn("failed to kill process", "error", err.Error())
			}
		}
		c.cmd = nil
	}

	return nil
}
