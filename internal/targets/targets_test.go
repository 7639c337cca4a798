// internal/targets/targets_test.go
package targets

import (
	"testing"

	"asmx/internal/core/domain"
	"asmx/internal/platform/registry"
)

// Every built-in alias must resolve to a non-empty triple.
func TestBuiltinTargetsRegistered(t *testing.T) {
	tests := []struct {
		alias  domain.Alias
		triple string
	}{
		{domain.AliasARM64, "aarch64-unknown-linux-musl"},
		{domain.AliasX8664, "x86_64-unknown-linux-musl"},
	}

	for _, tt := range tests {
		t.Run(string(tt.alias), func(t *testing.T) {
			target, err := registry.Global().Resolve(tt.alias)
			if err != nil {
				t.Fatalf("Resolve(%s) failed: %v", tt.alias, err)
			}
			if target.Triple == "" {
				t.Fatal("triple is empty")
			}
			if target.Triple != tt.triple {
				t.Errorf("triple = %q, want %q", target.Triple, tt.triple)
			}
		})
	}
}

func TestBuiltinMetadata(t *testing.T) {
	for _, alias := range registry.Global().List() {
		meta, ok := registry.Global().GetMetadata(alias)
		if !ok {
			t.Fatalf("no metadata for %s", alias)
		}
		if meta.Description == "" {
			t.Errorf("%s has no description", alias)
		}
		if meta.WordSize != 64 {
			t.Errorf("%s word size = %d, want 64", alias, meta.WordSize)
		}
	}
}
