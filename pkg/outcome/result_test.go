package outcome

import (
	"errors"
	"testing"
)

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("expected panic %q, got: %v", want, r)
		}
	}()
	f()
}

func TestOkConstruction(t *testing.T) {
	t.Parallel()
	r := Ok(5)
	if !r.IsOk() || r.IsFailure() || r.IsInvalid() {
		t.Fatalf("expected ok state, got: %v", r)
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got: %v", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got: %v", r.Err())
	}
}

func TestFailureConstruction(t *testing.T) {
	t.Parallel()
	e := NewError("boom")
	r := Failure[int](e)
	if r.IsOk() || !r.IsFailure() || r.IsInvalid() {
		t.Fatalf("expected failure state, got: %v", r)
	}
	if !EqualErrors(r.Err(), e) {
		t.Fatalf("expected error 'boom', got: %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value slot, got: %v", r.Value())
	}
}

func TestOfAndOfError(t *testing.T) {
	t.Parallel()
	if !Of(3).Equal(Ok(3)) {
		t.Fatalf("Of should construct Ok")
	}
	e := NewError("bad")
	if !OfError[string](e).Equal(Failure[string](e)) {
		t.Fatalf("OfError should construct Failure")
	}
}

func TestZeroValueIsInvalid(t *testing.T) {
	t.Parallel()
	var r Result[int]
	if !r.IsInvalid() {
		t.Fatalf("expected zero Result to be invalid")
	}
}

func TestTryFrom(t *testing.T) {
	t.Parallel()
	r := TryFrom(10, nil)
	if !r.IsOk() || r.Value() != 10 {
		t.Fatalf("expected Ok(10), got: %v", r)
	}

	cause := errors.New("io down")
	r = TryFrom(0, cause)
	if !r.IsFailure() {
		t.Fatalf("expected failure, got: %v", r)
	}
	if !errors.Is(r.Err(), cause) {
		t.Fatalf("expected wrapped cause, got: %v", r.Err())
	}
}

func TestTryFromTypedNilError(t *testing.T) {
	t.Parallel()
	var typed *testErr
	var err error = typed
	r := TryFrom(1, err)
	if !r.IsOk() {
		t.Fatalf("typed nil error should construct Ok, got: %v", r)
	}
}

type testErr struct{}

func (*testErr) Error() string { return "typed" }

func TestDeconstruct(t *testing.T) {
	t.Parallel()
	ok, v, err := Ok("hi").Deconstruct()
	if !ok || v != "hi" || err != nil {
		t.Fatalf("expected (true, hi, nil), got: (%v, %v, %v)", ok, v, err)
	}

	e := NewError("down")
	ok, v, err = Failure[string](e).Deconstruct()
	if ok || v != "" || !EqualErrors(err, e) {
		t.Fatalf("expected (false, zero, down), got: (%v, %v, %v)", ok, v, err)
	}
}

func TestDeconstructInvalidPanics(t *testing.T) {
	t.Parallel()
	var r Result[int]
	mustPanic(t, invalidMsg, func() {
		r.Deconstruct()
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !Ok(1).Equal(Ok(1)) {
		t.Fatalf("equal ok values must compare equal")
	}
	if Ok(1).Equal(Ok(2)) {
		t.Fatalf("differing ok payloads must compare unequal")
	}
	if Ok(1).Equal(Failure[int](NewError(1))) {
		t.Fatalf("differing tags must compare unequal")
	}
	if !Failure[int](NewError("x")).Equal(Failure[int](NewError("x"))) {
		t.Fatalf("equal failure payloads must compare equal")
	}
	if Failure[int](NewError("x")).Equal(Failure[int](NewError("y"))) {
		t.Fatalf("differing failure payloads must compare unequal")
	}
	var a, b Result[int]
	if !a.Equal(b) {
		t.Fatalf("two invalid values compare equal")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	t.Parallel()
	if Ok(41).Hash() != Ok(41).Hash() {
		t.Fatalf("equal ok values must hash equal")
	}
	if Ok(41).Hash() == Ok(42).Hash() {
		t.Fatalf("expected differing payload hashes to differ")
	}
	if Failure[int](NewError("x")).Hash() != Failure[int](NewError("x")).Hash() {
		t.Fatalf("equal failures must hash equal")
	}
	if Ok("x").Hash() == Failure[string](NewError("x")).Hash() {
		t.Fatalf("expected differing tags to hash differently")
	}
}
