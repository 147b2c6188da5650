// Package async re-exposes the Result combinator vocabulary over deferred
// computations: a Pending[T] is a future that eventually resolves to a
// Result[T], and every combinator composes it with a continuation as if it
// were already resolved.
//
// Each combinator comes in two forms, because Go has no overloading: the base
// name takes a continuation that returns immediately, the ...Future name takes
// a continuation that itself returns a future. The Future form is the real
// implementation; the base form lifts its continuation through
// future.Resolved.
//
// Guarantees, per combinator call: the continuation never runs before the
// antecedent has resolved; at most one of the two channel continuations runs,
// and never more than once; a non-matching Result passes through untouched
// without suspending again. A fault or cancellation of the antecedent future
// propagates as a fault of the composed future — it is never converted into a
// Failure Result. An invalid antecedent Result is a programmer error and
// faults the process, same as in the synchronous algebra.
//
// Key operations:
// - Lift: wrap an already-known Result into a Pending
// - Map/MapFuture, MapFailure/MapFailureFuture: transform one channel
// - Bind/BindFuture, BindFailure/BindFailureFuture: switch to a new Result
// - Match/MatchFuture: collapse to a plain (deferred) value
// - Tap/TapFuture: observe one channel, resolve to the original Result
package async
