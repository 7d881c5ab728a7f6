// Package await bridges synchronous code and poll-based asynchronous
// computations. It blocks the calling goroutine until a single
// computation completes, with no task scheduler in between: the
// computation is driven on the caller's own stack, and the caller
// parks only when progress is impossible.
//
// Key components:
//
//   - Future/Waker: The cooperative-suspension contract. A Future is
//     asked to make progress via Poll; while pending it registers a
//     Waker to be invoked when progress may next be possible.
//
//   - BlockOn: The driver loop. It polls a Future on the calling
//     goroutine and waits on an internal signal between polls,
//     returning the value once the Future completes.
//
//   - signal: The wait primitive behind BlockOn. An atomic tri-state
//     flag plus a park token, using adaptive spin-then-park so that
//     wakeups arriving within microseconds never pay for a park.
//
//   - Async/Await: Builds a Future from an ordinary function by
//     running it as a coroutine that suspends whenever a sub-Future
//     is pending.
//
//   - Promise: A one-shot value resolved from any goroutine, for
//     handing results across goroutine boundaries.
//
//   - All/Race: Combinators joining several Futures into one.
//
// There is no cancellation and no timeout: BlockOn blocks until the
// computation completes. A Future that never completes and never
// wakes its Waker blocks the caller forever.
package await
