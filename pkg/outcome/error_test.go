package outcome

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewErrorMessageRendersPayload(t *testing.T) {
	t.Parallel()
	e := NewError("disk full")
	if e.Error() != "disk full" {
		t.Fatalf("expected message 'disk full', got: %q", e.Error())
	}
	if e.Payload() != "disk full" {
		t.Fatalf("expected payload 'disk full', got: %v", e.Payload())
	}
}

func TestNewErrorWithErrorPayload(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	e := NewError(cause)

	if e.Error() != "boom" {
		t.Fatalf("expected message 'boom', got: %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected errors.Is to reach the payload through Unwrap")
	}
}

func TestUnwrapNilForNonErrorPayload(t *testing.T) {
	t.Parallel()
	e := NewError(42)
	if e.Unwrap() != nil {
		t.Fatalf("expected nil Unwrap for non-error payload, got: %v", e.Unwrap())
	}
}

func TestFromThrowableWrapsPanicValue(t *testing.T) {
	t.Parallel()
	e := FromThrowable("something broke")
	if e.Payload() != "something broke" {
		t.Fatalf("expected panic value as payload, got: %v", e.Payload())
	}
}

func TestEqualErrorsStructural(t *testing.T) {
	t.Parallel()
	a := NewError("boom")
	b := NewError("boom")
	c := NewError("bang")

	if !EqualErrors(a, b) {
		t.Fatalf("expected equal variant+payload to compare equal despite distinct trace ids")
	}
	if EqualErrors(a, c) {
		t.Fatalf("expected differing payloads to compare unequal")
	}
	if EqualErrors(NewError(7), NewError("7")) {
		t.Fatalf("expected differing variants to compare unequal")
	}
	if !EqualErrors(nil, nil) || EqualErrors(a, nil) || EqualErrors(nil, a) {
		t.Fatalf("nil handling broken")
	}
}

func TestTraceIDsAreDistinct(t *testing.T) {
	t.Parallel()
	a := NewError("x")
	b := NewError("x")
	if a.TraceID() == b.TraceID() {
		t.Fatalf("expected distinct trace ids, both: %v", a.TraceID())
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected creation time to be set")
	}
}

func TestGenericStringer(t *testing.T) {
	t.Parallel()
	e := NewError(7)
	if got := fmt.Sprintf("%v", e.Error()); got != "7" {
		t.Fatalf("expected '7', got: %q", got)
	}
}
