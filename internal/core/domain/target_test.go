// internal/core/domain/target_test.go
package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr error
	}{
		{
			name:   "valid target",
			target: Target{Alias: AliasARM64, Triple: "aarch64-unknown-linux-musl"},
		},
		{
			name:    "empty triple",
			target:  Target{Alias: AliasARM64, Triple: ""},
			wantErr: ErrEmptyTriple,
		},
		{
			name:    "whitespace triple",
			target:  Target{Alias: AliasX8664, Triple: "   "},
			wantErr: ErrEmptyTriple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	target := Target{Alias: AliasARM64, Triple: "aarch64-unknown-linux-musl"}

	s := target.String()
	if !strings.Contains(s, "arm64") || !strings.Contains(s, "aarch64-unknown-linux-musl") {
		t.Errorf("String() should name alias and triple, got %q", s)
	}
}

func TestNewExtractionRequest(t *testing.T) {
	valid := Target{Alias: AliasARM64, Triple: "aarch64-unknown-linux-musl"}

	tests := []struct {
		name     string
		function string
		target   Target
		wantErr  error
	}{
		{
			name:     "valid request",
			function: "simple_add_ten",
			target:   valid,
		},
		{
			name:     "empty function",
			function: "",
			target:   valid,
			wantErr:  ErrEmptyFunction,
		},
		{
			name:     "whitespace function",
			function: "  ",
			target:   valid,
			wantErr:  ErrEmptyFunction,
		},
		{
			name:     "invalid target",
			function: "simple_add_ten",
			target:   Target{Alias: AliasARM64},
			wantErr:  ErrEmptyTriple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewExtractionRequest(tt.function, tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Function != tt.function {
				t.Errorf("function must pass through unchanged: got %q, want %q", req.Function, tt.function)
			}
			if req.Target != tt.target {
				t.Errorf("target changed: got %+v, want %+v", req.Target, tt.target)
			}
		})
	}
}
