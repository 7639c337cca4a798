// cmd/asmx/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asmx/internal/adapters/output"
	"asmx/internal/core/domain"
	"asmx/internal/core/ports"
	"asmx/internal/core/usecases"
	"asmx/internal/platform/config"
	"asmx/internal/platform/errors"
	"asmx/internal/platform/logx"
	"asmx/internal/platform/registry"
	"asmx/internal/platform/ui"
	"asmx/internal/toolchain/cargoasm"

	// Import for target auto-registration via init()
	_ "asmx/internal/targets"
)

var (
	// Filled with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// commandAliases maps each extraction command to its ordered alias sequence.
// The order is the output contract: asm-all always shows arm64 first.
var commandAliases = map[string][]domain.Alias{
	"asm-arm64":  {domain.AliasARM64},
	"asm-x86-64": {domain.AliasX8664},
	"asm-all":    {domain.AliasARM64, domain.AliasX8664},
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("asmx %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	// No command: list what is available and exit cleanly
	if len(cfg.Args) == 0 {
		config.PrintUsage(os.Stdout)
		os.Exit(0)
	}

	logger := logx.New()
	if cfg.Verbose {
		logger.SetLevel(logx.LevelDebug)
	}

	presenter := ui.New(cfg.Raw)

	command := cfg.Args[0]

	if command == "list-targets" {
		listTargets()
		os.Exit(0)
	}

	aliases, ok := commandAliases[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		fmt.Fprintln(os.Stderr, "Try: asmx --help")
		os.Exit(2)
	}

	if len(cfg.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Error: %s requires a function identifier\n", command)
		fmt.Fprintf(os.Stderr, "Usage: asmx %s <function>\n", command)
		os.Exit(2)
	}
	function := cfg.Args[1]

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	toolchain := cargoasm.New(logger, cargoasm.Config{
		ExecPath: cfg.CargoPath,
		CrateDir: cfg.CrateDir,
		Timeout:  time.Duration(cfg.TimeoutS) * time.Second,
	})
	defer func() {
		if err := toolchain.Close(); err != nil {
			logger.Warn("failed to close toolchain", "error", err.Error())
		}
	}()

	if initializable, ok := ports.Toolchain(toolchain).(ports.InitializableToolchain); ok {
		if err := initializable.Initialize(ctx); err != nil {
			presenter.Error(err.Error())
			os.Exit(1)
		}
	}

	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Toolchain: toolchain,
		Resolver:  registry.Global(),
		Writer:    output.NewBlockWriter(os.Stdout),
		Logger:    logger,
	})

	presenter.Start(ui.RunInfo{
		Command:  command,
		Function: function,
		Targets:  aliasStrings(aliases),
		TimeoutS: cfg.TimeoutS,
	})

	start := time.Now()
	runErr := orch.Compare(ctx, aliases, function)
	elapsed := time.Since(start)

	presenter.Finish(ui.RunStats{
		Blocks:  len(aliases),
		Failed:  runErr != nil,
		Elapsed: elapsed,
	})

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		if errors.Is(runErr, domain.ErrUnknownAlias) || errors.Is(runErr, domain.ErrEmptyFunction) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// listTargets prints the known aliases with their triples.
func listTargets() {
	reg := registry.Global()
	for _, alias := range reg.List() {
		meta, _ := reg.GetMetadata(alias)
		fmt.Printf("%-10s %-30s %s\n", meta.Alias, meta.Triple, meta.Description)
	}
}

func aliasStrings(aliases []domain.Alias) []string {
	out := make([]string, len(aliases))
	for i, a := range aliases {
		out[i] = string(a)
	}
	return out
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
