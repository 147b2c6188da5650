package exceptional

// The functions supplied to Map, Bind and Tap must not panic. The only panic
// boundary is the TryCatch/Catching* entry point; nothing is re-caught here,
// so a panicking continuation propagates to the caller.

// Map transforms the success value of input with f. A Caught input passes
// through with its payload untouched and f is never invoked.
func Map[T, U any](input Exceptional[T], f func(T) U) Exceptional[U] {
	switch input.state {
	case stateValue:
		return Success(f(input.value))
	case stateCaught:
		return FromPanic[U](input.caught)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Bind switches a Value input to the Exceptional returned by f, flattened.
// A Caught input short-circuits without invoking f.
func Bind[T, U any](input Exceptional[T], f func(T) Exceptional[U]) Exceptional[U] {
	switch input.state {
	case stateValue:
		return f(input.value)
	case stateCaught:
		return FromPanic[U](input.caught)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Match collapses input to a plain value. Exactly one handler runs and its
// return value is the overall result.
func Match[T, R any](input Exceptional[T], onValue func(T) R, onCaught func(any) R) R {
	switch input.state {
	case stateValue:
		return onValue(input.value)
	case stateCaught:
		return onCaught(input.caught)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Tap invokes exactly one of the two observation callbacks and returns the
// original Exceptional unchanged.
func (e Exceptional[T]) Tap(onValue func(T), onCaught func(any)) Exceptional[T] {
	switch e.state {
	case stateValue:
		if onValue != nil {
			onValue(e.value)
		}
		return e
	case stateCaught:
		if onCaught != nil {
			onCaught(e.caught)
		}
		return e
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}
