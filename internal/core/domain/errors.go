// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Resolution errors
	ErrUnknownAlias  = errors.New("unknown target alias")
	ErrEmptyFunction = errors.New("function identifier cannot be empty")
	ErrEmptyTriple   = errors.New("target triple cannot be empty")

	// Toolchain errors
	ErrToolNotFound   = errors.New("toolchain binary not found")
	ErrToolInvocation = errors.New("toolchain invocation failed")

	// Configuration errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigLoadFailed = errors.New("failed to load configuration")
)
