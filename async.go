package await

import (
	"github.com/webriots/coro"
)

// Coro is the suspension handle passed to an Async function. It
// carries the Waker of the most recent Poll and the coroutine's
// suspend function, letting Await and Yield park the coroutine
// mid-stack until the next Poll resumes it.
type Coro struct {
	waker   Waker
	suspend func() Waker
}

// Yield wakes the driving Waker and suspends until the next Poll.
// The computation stays runnable, so a surrounding BlockOn re-polls
// immediately; use it to hand control back without waiting on
// anything.
func (co *Coro) Yield() {
	co.waker.Wake()
	co.waker = co.suspend()
}

// Async runs fn as a coroutine exposed as a Future. Each Poll resumes
// the coroutine with the caller's Waker; fn suspends whenever an
// Await finds its sub-Future pending, and the Future completes when
// fn returns. The coroutine only ever runs inside Poll, on the
// polling goroutine's schedule.
//
// A panic inside fn surfaces from the Poll that resumed it.
func Async[T any](fn func(co *Coro) T) *AsyncFuture[T] {
	f := new(AsyncFuture[T])
	f.co = new(Coro)

	resume, cancel := coro.New(
		func(yield func(struct{}) Waker, suspend func() Waker) (z struct{}) {
			f.co.suspend = suspend
			f.out = fn(f.co)
			return
		},
	)

	f.resume = resume
	f.cancel = cancel
	return f
}

// AsyncFuture is a Future created by Async. The coroutine behind it
// is released when fn returns; a future that will never be polled to
// completion must be released with Cancel instead, or its coroutine
// stays suspended for good.
type AsyncFuture[T any] struct {
	co       *Coro
	resume   func(Waker) (struct{}, bool)
	cancel   func()
	out      T
	done     bool
	canceled bool
	released bool
}

// Poll resumes the coroutine until it suspends again or returns.
// Polling a canceled future panics.
func (f *AsyncFuture[T]) Poll(w Waker) (T, bool) {
	if f.done {
		return f.out, true
	}
	if f.canceled {
		panic("await: poll of canceled coroutine")
	}

	f.co.waker = w
	if _, suspended := f.resume(w); suspended {
		var zero T
		return zero, false
	}

	f.done = true
	f.release()
	return f.out, true
}

// Cancel releases the coroutine of a future that is being abandoned
// while suspended, such as a losing Race child. It is idempotent and
// safe to call after completion; the future must not be polled
// afterwards.
func (f *AsyncFuture[T]) Cancel() {
	f.canceled = true
	f.release()
}

func (f *AsyncFuture[T]) release() {
	if f.released {
		return
	}
	f.released = true
	f.cancel()
}

// Wait blocks the calling goroutine until the coroutine returns. It
// is shorthand for BlockOn(f).
func (f *AsyncFuture[T]) Wait() T { return BlockOn[T](f) }

// Await polls sub from within an Async function, suspending the
// coroutine each time sub is pending, and returns sub's value once
// it completes. The enclosing Future's Waker is forwarded to sub, so
// whatever wakes sub re-polls the whole coroutine.
func Await[S any](co *Coro, sub Future[S]) S {
	for {
		if v, ok := sub.Poll(co.waker); ok {
			return v
		}
		co.waker = co.suspend()
	}
}
