package exceptional

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"runtime/debug"

	"github.com/ev-12/outcome/pkg/outcome"
)

type state int8

const (
	stateInvalid state = iota
	stateValue
	stateCaught
)

const (
	invalidMsg     = "exceptional: operation on an invalid Exceptional; construct it with Success, FromPanic or TryCatch"
	unreachableMsg = "exceptional: Exceptional holds an unrepresentable state"
)

// Exceptional is a two-state value: a successful Value of T or a Caught panic
// payload. The zero value is invalid and rejected by every combinator, same
// rule as outcome.Result.
type Exceptional[T any] struct {
	state  state
	value  T
	caught any
}

// Success constructs an Exceptional holding v.
func Success[T any](v T) Exceptional[T] {
	return Exceptional[T]{state: stateValue, value: v}
}

// FromPanic constructs an Exceptional holding an already-recovered panic
// payload.
func FromPanic[T any](v any) Exceptional[T] {
	return Exceptional[T]{state: stateCaught, caught: v}
}

// TryCatch runs f and captures any panic it raises, except critical faults,
// which terminate the process.
func TryCatch[T any](f func() T) (ex Exceptional[T]) {
	defer capture(&ex, catchAll)
	return Success(f())
}

// Catching1 runs f and captures only panics whose payload is an E1. Critical
// faults still terminate the process; any other panic propagates uncaught.
func Catching1[T any, E1 any](f func() T) (ex Exceptional[T]) {
	defer capture(&ex, matches[E1])
	return Success(f())
}

// Catching2 is Catching1 over two payload types.
func Catching2[T any, E1, E2 any](f func() T) (ex Exceptional[T]) {
	defer capture(&ex, func(v any) bool {
		return matches[E1](v) || matches[E2](v)
	})
	return Success(f())
}

// Catching3 is Catching1 over three payload types.
func Catching3[T any, E1, E2, E3 any](f func() T) (ex Exceptional[T]) {
	defer capture(&ex, func(v any) bool {
		return matches[E1](v) || matches[E2](v) || matches[E3](v)
	})
	return Success(f())
}

func catchAll(any) bool { return true }

func matches[E any](v any) bool {
	_, ok := v.(E)
	return ok
}

// capture implements the boundary: critical faults abort, catalog members
// become the Caught state, everything else re-panics.
func capture[T any](ex *Exceptional[T], catalog func(any) bool) {
	v := recover()
	if v == nil {
		return
	}
	if _, critical := v.(runtime.Error); critical {
		abort(v)
	}
	if catalog(v) {
		*ex = FromPanic[T](v)
		return
	}
	panic(v)
}

// abort is swapped out in tests; the process must not survive a critical
// fault, so os.Exit rather than a panic that a recover further up could eat.
var abort = func(v any) {
	fmt.Fprintf(os.Stderr, "exceptional: critical fault, terminating: %v\n%s", v, debug.Stack())
	os.Exit(2)
}

func (e Exceptional[T]) IsValue() bool {
	return e.state == stateValue
}

func (e Exceptional[T]) IsCaught() bool {
	return e.state == stateCaught
}

// IsInvalid reports whether e is a zero value that never went through a
// constructor.
func (e Exceptional[T]) IsInvalid() bool {
	return e.state == stateInvalid
}

// Value returns the success value, or the zero value of T when e is Caught.
func (e Exceptional[T]) Value() T {
	return e.value
}

// Caught returns the captured panic payload, or nil when e is a Value.
func (e Exceptional[T]) Caught() any {
	return e.caught
}

// Try returns the success flag and the value slot, for callers that do not
// want Match.
func (e Exceptional[T]) Try() (T, bool) {
	switch e.state {
	case stateValue:
		return e.value, true
	case stateCaught:
		var zero T
		return zero, false
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Equal reports structural equality: same state, then equal payload.
func (e Exceptional[T]) Equal(other Exceptional[T]) bool {
	if e.state != other.state {
		return false
	}
	switch e.state {
	case stateValue:
		return reflect.DeepEqual(e.value, other.value)
	case stateCaught:
		return reflect.DeepEqual(e.caught, other.caught)
	default:
		return true
	}
}

// ToResult bridges into the Result algebra: Value becomes Ok, Caught becomes
// a Failure wrapping the panic payload in a generic error.
func (e Exceptional[T]) ToResult() outcome.Result[T] {
	switch e.state {
	case stateValue:
		return outcome.Ok(e.value)
	case stateCaught:
		return outcome.Failure[T](outcome.FromThrowable(e.caught))
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

func (e Exceptional[T]) String() string {
	switch e.state {
	case stateValue:
		return fmt.Sprintf("Value(%v)", e.value)
	case stateCaught:
		return fmt.Sprintf("Caught(%v)", e.caught)
	default:
		return "Invalid"
	}
}
