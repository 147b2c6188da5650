// Package pipe provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values with a context threaded through every step.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain from a Result or a value
// - Then/Try: compose result-returning or (value, error)-returning functions
// - Map/MapErr: transform the success value or the error
// - Recover: route a failure back into the success track
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chains are same-type by construction (a Go method cannot introduce a new
// type parameter); cross-type moves use the free functions in package
// outcome directly.
package pipe
