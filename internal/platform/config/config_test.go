// internal/platform/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"asmx/internal/core/domain"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CargoPath != "cargo" {
		t.Errorf("CargoPath = %q, want cargo", cfg.CargoPath)
	}
	if cfg.TimeoutS != 0 {
		t.Errorf("TimeoutS = %d, want 0", cfg.TimeoutS)
	}
	if cfg.Raw || cfg.Verbose || cfg.PrintVersion {
		t.Error("boolean options should default to false")
	}
}

func TestPositionalArgs(t *testing.T) {
	cfg, err := Load([]string{"asm-all", "relaxed_atomic_fetch_or", "--raw"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Args) != 2 {
		t.Fatalf("Args = %v, want 2 positionals", cfg.Args)
	}
	if cfg.Args[0] != "asm-all" || cfg.Args[1] != "relaxed_atomic_fetch_or" {
		t.Errorf("Args = %v", cfg.Args)
	}
	if !cfg.Raw {
		t.Error("flags after positionals should still parse")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	os.Setenv("ASMX_CARGO", "/env/cargo")
	defer os.Unsetenv("ASMX_CARGO")

	cfg, err := Load([]string{"--cargo", "/flag/cargo"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CargoPath != "/flag/cargo" {
		t.Errorf("CargoPath = %q, flags must override env", cfg.CargoPath)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	os.Setenv("ASMX_CRATE_DIR", "/crates/asm")
	os.Setenv("ASMX_TIMEOUT", "90")
	os.Setenv("ASMX_RAW", "true")
	defer func() {
		os.Unsetenv("ASMX_CRATE_DIR")
		os.Unsetenv("ASMX_TIMEOUT")
		os.Unsetenv("ASMX_RAW")
	}()

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CrateDir != "/crates/asm" {
		t.Errorf("CrateDir = %q", cfg.CrateDir)
	}
	if cfg.TimeoutS != 90 {
		t.Errorf("TimeoutS = %d, want 90", cfg.TimeoutS)
	}
	if !cfg.Raw {
		t.Error("Raw should be true from env")
	}
}

func TestManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asmx.yaml")
	manifest := `
toolchain:
  cargo: /opt/cargo
  crate_dir: /crates/atomics
  timeout: 120
output:
  raw: true
`
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CargoPath != "/opt/cargo" {
		t.Errorf("CargoPath = %q", cfg.CargoPath)
	}
	if cfg.CrateDir != "/crates/atomics" {
		t.Errorf("CrateDir = %q", cfg.CrateDir)
	}
	if cfg.TimeoutS != 120 {
		t.Errorf("TimeoutS = %d", cfg.TimeoutS)
	}
	if !cfg.Raw {
		t.Error("Raw should come from the manifest")
	}
}

func TestExplicitManifestMustExist(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if !errors.Is(err, domain.ErrConfigLoadFailed) {
		t.Errorf("expected ErrConfigLoadFailed, got %v", err)
	}
}

func TestNegativeTimeoutRejected(t *testing.T) {
	os.Setenv("ASMX_TIMEOUT", "-5")
	defer os.Unsetenv("ASMX_TIMEOUT")

	_, err := Load(nil)
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseBool(tt.input); got != tt.expected {
				t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
