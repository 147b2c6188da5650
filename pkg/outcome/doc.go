// Package outcome defines the Result[T] value and the Error family used by
// every other package in this module.
//
// A Result[T] is either Ok (carrying a value) or Failure (carrying an Error);
// a zero Result is invalid and rejected by every combinator. Errors form a
// closed family whose only open point is Generic[V], a wrapper around an
// arbitrary payload.
//
// Key operations:
// - Ok/Failure/Of/OfError/TryFrom: construct a Result[T]
// - Map/MapFailure: transform one side, pass the other through untouched
// - Bind/BindFailure: switch to a new Result, flattened
// - Match: collapse to a plain value via exactly one handler
// - Tap: observe exactly one side without changing the Result
// - Deconstruct/Equal/Hash: pattern matching and structural comparison
//
// For panic boundaries see package exceptional, for deferred composition see
// packages future and async, and for fluent synchronous chaining see pipe.
package outcome
