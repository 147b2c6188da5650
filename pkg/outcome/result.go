package outcome

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
)

type state int8

const (
	stateInvalid state = iota
	stateOk
	stateFailure
)

const (
	invalidMsg     = "outcome: operation on an invalid Result; construct it with Ok or Failure"
	unreachableMsg = "outcome: Result holds an unrepresentable state"
)

// Result is a three-state value: Ok with a success value, Failure with an
// Error, or invalid. Invalid is only ever the artifact of a zero value; it is
// not a legitimate terminal state, and every combinator panics on it.
// Exactly one payload slot is populated and it matches the state.
type Result[T any] struct {
	state state
	value T
	err   Error
}

// Ok constructs a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{state: stateOk, value: v}
}

// Failure constructs a failed Result holding e.
func Failure[T any](e Error) Result[T] {
	return Result[T]{state: stateFailure, err: e}
}

// Of is the implicit value-to-Result conversion.
func Of[T any](v T) Result[T] {
	return Ok(v)
}

// OfError is the implicit Error-to-Result conversion.
func OfError[T any](e Error) Result[T] {
	return Failure[T](e)
}

// TryFrom bridges a conventional (value, error) pair into a Result, wrapping
// a non-nil error into a Generic.
func TryFrom[T any](v T, err error) Result[T] {
	if !IsNil(err) {
		return Failure[T](NewError(err))
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.state == stateOk
}

func (r Result[T]) IsFailure() bool {
	return r.state == stateFailure
}

// IsInvalid reports whether r is a zero value that never went through a
// constructor.
func (r Result[T]) IsInvalid() bool {
	return r.state == stateInvalid
}

// Value returns the success value, or the zero value of T when r is not Ok.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error, or nil when r is not a Failure.
func (r Result[T]) Err() Error {
	return r.err
}

// Deconstruct returns the pattern-matching triple for callers that do not
// want Match: the success flag, the value slot and the error slot. It panics
// on an invalid Result.
func (r Result[T]) Deconstruct() (ok bool, value T, err Error) {
	switch r.state {
	case stateOk:
		return true, r.value, nil
	case stateFailure:
		var zero T
		return false, zero, r.err
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Equal reports structural equality: same state, then equal payload. Invalid
// values compare equal only to other invalid values.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.state != other.state {
		return false
	}
	switch r.state {
	case stateOk:
		return reflect.DeepEqual(r.value, other.value)
	case stateFailure:
		return EqualErrors(r.err, other.err)
	default:
		return true
	}
}

// Hash returns a structural hash consistent with Equal: equal Results hash
// equal within a process.
func (r Result[T]) Hash() uint64 {
	h := fnv.New64a()
	switch r.state {
	case stateOk:
		io.WriteString(h, "ok|")
		fmt.Fprintf(h, "%v", r.value)
	case stateFailure:
		io.WriteString(h, "failure|")
		if r.err != nil {
			fmt.Fprintf(h, "%T|%v", r.err, r.err.payload())
		}
	default:
		io.WriteString(h, "invalid")
	}
	return h.Sum64()
}

func (r Result[T]) String() string {
	switch r.state {
	case stateOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case stateFailure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Invalid"
	}
}
