package await

// Waker is the notification target a pending Future registers with
// each Poll. Wake reports that progress may now be possible. It may
// be called any number of times, from any goroutine, at any point
// relative to the poller's wait. Wake never blocks.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// Future is an asynchronous computation. Poll asks it to make
// progress: it returns (value, true) once the computation has
// completed, or (zero, false) if the result is not yet available, in
// which case the computation must arrange for w to be woken when the
// answer may have changed. Poll must not block. The types in this
// package are fused: polling again after completion keeps returning
// the same value. BlockOn itself never re-polls a completed Future,
// so other implementations are free not to tolerate it.
//
// Only the Waker passed to the most recent Poll call needs to be
// woken.
type Future[T any] interface {
	Poll(w Waker) (T, bool)
}

// FutureFunc adapts a plain function to the Future interface.
type FutureFunc[T any] func(w Waker) (T, bool)

// Poll calls f.
func (f FutureFunc[T]) Poll(w Waker) (T, bool) { return f(w) }

// Wait blocks the calling goroutine until f completes and returns
// its value. It is shorthand for BlockOn(f).
func (f FutureFunc[T]) Wait() T { return BlockOn[T](f) }

// Ready returns a Future that is already complete with value v.
// Polling it never suspends the caller.
func Ready[T any](v T) ReadyFuture[T] { return ReadyFuture[T]{v} }

// ReadyFuture is a Future created by Ready.
type ReadyFuture[T any] struct {
	v T
}

// Poll reports completion with the stored value.
func (r ReadyFuture[T]) Poll(Waker) (T, bool) { return r.v, true }

// Wait returns the stored value. It is shorthand for BlockOn(r).
func (r ReadyFuture[T]) Wait() T { return BlockOn[T](r) }
