// Package targets registers the built-in target aliases.
// Adding a target is one new Register call here: a single, auditable
// addition rather than a parsing-rule change.
package targets

import (
	"asmx/internal/core/domain"
	"asmx/internal/platform/logx"
	"asmx/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	register(registry.TargetMetadata{
		Alias:       domain.AliasARM64,
		Triple:      "aarch64-unknown-linux-musl",
		Description: "64-bit ARM, Linux, musl libc",
		WordSize:    64,
	})

	register(registry.TargetMetadata{
		Alias:       domain.AliasX8664,
		Triple:      "x86_64-unknown-linux-musl",
		Description: "64-bit x86, Linux, musl libc",
		WordSize:    64,
	})
}

func register(meta registry.TargetMetadata) {
	if err := registry.Global().Register(meta); err != nil {
		// Log but don't panic, let the application start
		logx.New().Warn("failed to register target", "alias", meta.Alias, "error", err.Error())
	}
}
