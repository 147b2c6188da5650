// Package exceptional converts the host's panic mechanism into a value at a
// single boundary.
//
// An Exceptional[T] is either a Value or a Caught panic payload. TryCatch and
// the Catching* entry points run a computation and capture a panic raised
// during it; everything after that boundary is plain value composition, and
// the functions handed to Map/Bind/Tap are required not to panic — no further
// catching is layered on top, so a buggy continuation surfaces instead of
// being swallowed.
//
// Critical faults (runtime.Error panics: nil dereference, out-of-range
// access, bad map use) are never captured as data. They terminate the
// process immediately, because resuming through the value channel after a
// language-level invariant broke would run the program in an unsound state.
//
// Key operations:
// - TryCatch: run a function, catching any non-critical panic
// - Catching1/2/3: catch only panics of the listed payload types
// - Map/Bind/Tap/Match: Result-style combinators over the two states
// - Try: success flag plus value, for callers that do not want Match
// - ToResult: bridge Caught into a Failure via the generic error wrapper
package exceptional
