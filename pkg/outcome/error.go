package outcome

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Error is the closed family of data-level failures carried by a Failure
// Result. Variants are immutable once constructed; they are only read or
// re-wrapped as they move through combinators. Structural comparison goes
// through EqualErrors, never through ==.
type Error interface {
	error
	// payload returns the variant's payload for structural comparison.
	payload() any
	// sealed keeps the family closed to this package.
	sealed()
}

// Generic is the open point of the Error family: a failure wrapping an
// arbitrary payload of type V. The trace id and creation time identify the
// failure site; they do not take part in structural equality.
type Generic[V any] struct {
	value     V
	id        uuid.UUID
	createdAt time.Time
}

// NewError wraps payload into a Generic error.
func NewError[V any](payload V) Generic[V] {
	return Generic[V]{
		value:     payload,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// FromThrowable wraps a recovered panic value into a Generic error. It is the
// bridge used by exceptional.ToResult.
func FromThrowable(v any) Generic[any] {
	return NewError[any](v)
}

func (g Generic[V]) Error() string {
	if err, ok := any(g.value).(error); ok && !IsNil(err) {
		return err.Error()
	}
	return fmt.Sprintf("%v", g.value)
}

// Payload returns the wrapped value.
func (g Generic[V]) Payload() V {
	return g.value
}

// Unwrap exposes an error payload to errors.Is/As chains; it returns nil for
// non-error payloads.
func (g Generic[V]) Unwrap() error {
	if err, ok := any(g.value).(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

// TraceID identifies this particular failure instance.
func (g Generic[V]) TraceID() uuid.UUID {
	return g.id
}

// CreatedAt is the failure construction time (UTC).
func (g Generic[V]) CreatedAt() time.Time {
	return g.createdAt
}

func (g Generic[V]) payload() any { return g.value }
func (g Generic[V]) sealed()      {}

// EqualErrors reports structural equality: same variant, equal payload.
func EqualErrors(a, b Error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a.payload(), b.payload())
}
