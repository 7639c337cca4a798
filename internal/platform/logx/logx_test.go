// internal/platform/logx/logx_test.go
package logx

import (
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should return a logger, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DBG", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"  inf  ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"err", LevelError},
		{"ERROR", LevelError},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKvPairs(t *testing.T) {
	got := kvPairs("function", "simple_add_ten", "target", "arm64")
	if len(got) != 2 {
		t.Fatalf("expected 2 pairs, got %v", got)
	}
	if got[0] != "function=simple_add_ten" || got[1] != "target=arm64" {
		t.Errorf("pairs = %v", got)
	}
}

func TestKvPairsOddCount(t *testing.T) {
	got := kvPairs("dangling")
	if len(got) != 1 {
		t.Fatalf("expected 1 pair, got %v", got)
	}
	if got[0] != "dangling=(missing)" {
		t.Errorf("pair = %q", got[0])
	}
}

func TestWithScope(t *testing.T) {
	base := NewSilent()
	scoped := base.With("component", "orchestrator")
	if scoped == nil {
		t.Fatal("With should return a logger")
	}

	// With must not mutate the parent
	parent, ok := base.(*simpleLogger)
	if !ok {
		t.Fatal("unexpected logger type")
	}
	if len(parent.scope) != 0 {
		t.Errorf("parent scope mutated: %v", parent.scope)
	}

	child, ok := scoped.(*simpleLogger)
	if !ok {
		t.Fatal("unexpected logger type")
	}
	if len(child.scope) != 1 || child.scope[0] != "component=orchestrator" {
		t.Errorf("child scope = %v", child.scope)
	}
}

func TestErrNilIsNoop(t *testing.T) {
	logger := New()
	// Must not panic or emit
	logger.Err(nil)
}
