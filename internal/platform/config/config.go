// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"asmx/internal/core/domain"
	"asmx/internal/platform/errors"
)

// Config is the resolved configuration for one asmx run.
// Layering: defaults -> optional asmx.yaml -> ASMX_* env vars -> flags.
type Config struct {
	// Toolchain
	CargoPath string // cargo binary to invoke
	CrateDir  string // working directory of the crate being inspected
	TimeoutS  int    // per-invocation timeout in seconds (0 = none)

	// Presentation
	Raw     bool // plain status output, no terminal styling
	Verbose bool // debug logging

	// Info
	PrintVersion bool

	// ConfigPath is the manifest that was (or would be) read
	ConfigPath string

	// Args are the positional arguments left after flag parsing:
	// the command name and its function identifier
	Args []string
}

// fileConfig mirrors the asmx.yaml manifest layout.
type fileConfig struct {
	Toolchain struct {
		Cargo    string `yaml:"cargo"`
		CrateDir string `yaml:"crate_dir"`
		Timeout  int    `yaml:"timeout"`
	} `yaml:"toolchain"`
	Output struct {
		Raw bool `yaml:"raw"`
	} `yaml:"output"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		CargoPath:  "cargo",
		CrateDir:   "",
		TimeoutS:   0,
		Raw:        false,
		Verbose:    false,
		ConfigPath: "asmx.yaml",
	}
}

// Load builds the configuration: defaults, then the optional manifest, then
// environment, then flags (highest priority). Flag parse errors and an
// unreadable explicit manifest are terminal.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := pflag.NewFlagSet("asmx", pflag.ContinueOnError)
	fs.Usage = func() { PrintUsage(os.Stderr) }

	configPath := fs.StringP("config", "c", "", "Path to asmx.yaml manifest (optional)")
	cargoPath := fs.String("cargo", "", "Cargo binary to invoke")
	crateDir := fs.StringP("crate-dir", "d", "", "Directory of the crate to inspect")
	timeoutS := fs.IntP("timeout", "T", -1, "Per-invocation timeout in seconds, 0=none")
	raw := fs.Bool("raw", false, "Plain status output (no terminal styling)")
	verbose := fs.BoolP("verbose", "v", false, "Verbose logging")
	version := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		return cfg, errors.Wrap(domain.ErrInvalidConfig, err.Error())
	}

	// Manifest (explicit path must exist; the default one is optional)
	explicit := *configPath != ""
	if explicit {
		cfg.ConfigPath = *configPath
	}
	if err := loadFromFile(&cfg, explicit); err != nil {
		return cfg, err
	}

	loadFromEnv(&cfg)

	// Flags override everything
	if *cargoPath != "" {
		cfg.CargoPath = *cargoPath
	}
	if *crateDir != "" {
		cfg.CrateDir = *crateDir
	}
	if *timeoutS >= 0 {
		cfg.TimeoutS = *timeoutS
	}
	if *raw {
		cfg.Raw = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *version {
		cfg.PrintVersion = true
	}

	cfg.Args = fs.Args()

	return normalize(cfg)
}

// loadFromFile merges the yaml manifest into cfg.
func loadFromFile(cfg *Config, required bool) error {
	data, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(domain.ErrConfigLoadFailed, "%s: %v", cfg.ConfigPath, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(domain.ErrConfigLoadFailed, "%s: %v", cfg.ConfigPath, err)
	}

	if fc.Toolchain.Cargo != "" {
		cfg.CargoPath = fc.Toolchain.Cargo
	}
	if fc.Toolchain.CrateDir != "" {
		cfg.CrateDir = fc.Toolchain.CrateDir
	}
	if fc.Toolchain.Timeout > 0 {
		cfg.TimeoutS = fc.Toolchain.Timeout
	}
	if fc.Output.Raw {
		cfg.Raw = true
	}

	return nil
}

// loadFromEnv merges ASMX_* environment variables into cfg.
func loadFromEnv(cfg *Config) {
	if v := getenv("ASMX_CARGO", ""); v != "" {
		cfg.CargoPath = v
	}
	if v := getenv("ASMX_CRATE_DIR", ""); v != "" {
		cfg.CrateDir = v
	}
	if v := getenv("ASMX_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("ASMX_RAW", ""); v != "" {
		cfg.Raw = parseBool(v)
	}
}

// normalize applies final sanity checks.
func normalize(cfg Config) (Config, error) {
	if cfg.TimeoutS < 0 {
		return cfg, errors.Wrapf(domain.ErrInvalidConfig, "timeout cannot be negative: %d", cfg.TimeoutS)
	}
	if strings.TrimSpace(cfg.CargoPath) == "" {
		return cfg, fmt.Errorf("%w: cargo path cannot be empty", domain.ErrInvalidConfig)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
