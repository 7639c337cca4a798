// internal/platform/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	base := New("base failure")
	wrapped := Wrap(base, "context")

	if wrapped.Error() != "context: base failure" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error should match base via Is")
	}
	if Unwrap(wrapped) != base {
		t.Error("Unwrap should return the base error")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := New("base failure")
	wrapped := Wrapf(base, "item %d", 42)

	if wrapped.Error() != "item 42: base failure" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error should match base via Is")
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsTimeout(Wrap(ErrTimeout, "slow invocation")) {
		t.Error("IsTimeout should match wrapped ErrTimeout")
	}
	if IsTimeout(New("other")) {
		t.Error("IsTimeout should not match unrelated errors")
	}
	if !IsInvalidInput(fmt.Errorf("outer: %w", ErrInvalidInput)) {
		t.Error("IsInvalidInput should match fmt-wrapped sentinel")
	}
}

func TestJoin(t *testing.T) {
	a := New("a")
	b := New("b")

	joined := Join(a, nil, b)
	if !Is(joined, a) || !Is(joined, b) {
		t.Error("Join should preserve both errors")
	}
}
