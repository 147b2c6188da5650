// Package future provides the deferred-computation primitive the async
// combinators compose over: a Future[T] that is completed exactly once and
// can be awaited by any number of readers.
//
// A Future settles through Complete, Fail or Cancel; the first settlement
// wins and later ones are ignored. A fault (Fail or Cancel) travels on the
// future's own error channel, separate from whatever value the future
// carries — for a Future of a Result, a Failure Result is a settled value,
// while a fault means the computation itself never produced one.
package future
