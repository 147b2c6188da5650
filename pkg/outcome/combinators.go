package outcome

// Map transforms the success value of input with f. A Failure passes through
// with its error untouched and f is never invoked. If f panics, the panic
// propagates to the caller; this layer does not catch.
func Map[T, U any](input Result[T], f func(T) U) Result[U] {
	switch input.state {
	case stateOk:
		return Ok(f(input.value))
	case stateFailure:
		return Failure[U](input.err)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// MapFailure transforms the error of input with g. An Ok passes through
// untouched and g is never invoked.
func MapFailure[T any](input Result[T], g func(Error) Error) Result[T] {
	switch input.state {
	case stateOk:
		return input
	case stateFailure:
		return Failure[T](g(input.err))
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Bind switches an Ok input to the Result returned by f, flattened. A Failure
// short-circuits: f is never invoked and the error is reinterpreted under the
// new success type.
func Bind[T, U any](input Result[T], f func(T) Result[U]) Result[U] {
	switch input.state {
	case stateOk:
		return f(input.value)
	case stateFailure:
		return Failure[U](input.err)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// BindFailure recovers a Failure through g, which may return Ok again. An Ok
// input passes through untouched and g is never invoked.
func BindFailure[T any](input Result[T], g func(Error) Result[T]) Result[T] {
	switch input.state {
	case stateOk:
		return input
	case stateFailure:
		return g(input.err)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Match collapses input to a plain value. Exactly one handler runs,
// synchronously, and its return value is the overall result.
func Match[T, R any](input Result[T], onOk func(T) R, onFailure func(Error) R) R {
	switch input.state {
	case stateOk:
		return onOk(input.value)
	case stateFailure:
		return onFailure(input.err)
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}

// Tap invokes exactly one of the two observation callbacks and returns input
// unchanged. A panicking callback propagates to the caller; the Result itself
// is never altered.
func Tap[T any](input Result[T], onOk func(T), onFailure func(Error)) Result[T] {
	switch input.state {
	case stateOk:
		if onOk != nil {
			onOk(input.value)
		}
		return input
	case stateFailure:
		if onFailure != nil {
			onFailure(input.err)
		}
		return input
	case stateInvalid:
		panic(invalidMsg)
	default:
		panic(unreachableMsg)
	}
}
