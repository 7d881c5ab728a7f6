package await

// All returns a Future that completes once every Future in fs has
// completed, yielding their values in argument order. Children are
// polled in sequence within each Poll; a completed child is never
// polled again. All of no futures completes immediately with an
// empty slice.
func All[T any](fs ...Future[T]) *AllFuture[T] {
	return &AllFuture[T]{
		fs:      fs,
		out:     make([]T, len(fs)),
		pending: len(fs),
	}
}

// AllFuture is a Future created by All.
type AllFuture[T any] struct {
	fs      []Future[T]
	out     []T
	pending int
}

// Poll advances every still-pending child with the caller's Waker.
func (a *AllFuture[T]) Poll(w Waker) ([]T, bool) {
	for i, f := range a.fs {
		if f == nil {
			continue
		}
		if v, ok := f.Poll(w); ok {
			a.out[i] = v
			a.fs[i] = nil
			a.pending--
		}
	}
	if a.pending == 0 {
		return a.out, true
	}
	return nil, false
}

// Wait blocks the calling goroutine until every child completes. It
// is shorthand for BlockOn(a).
func (a *AllFuture[T]) Wait() []T { return BlockOn[[]T](a) }

// Race returns a Future yielding the value of whichever Future in fs
// completes first, with ties broken by argument order. The remaining
// children are never polled again once a winner is found; a losing
// child that holds resources, such as an AsyncFuture, is the
// caller's to release with Cancel. Race of no futures panics: it
// could only block forever.
func Race[T any](fs ...Future[T]) *RaceFuture[T] {
	if len(fs) == 0 {
		panic("await: race of no futures")
	}
	return &RaceFuture[T]{fs: fs}
}

// RaceFuture is a Future created by Race.
type RaceFuture[T any] struct {
	fs  []Future[T]
	out T
	won bool
}

// Poll advances the children in order until one completes.
func (r *RaceFuture[T]) Poll(w Waker) (T, bool) {
	if r.won {
		return r.out, true
	}
	for _, f := range r.fs {
		if v, ok := f.Poll(w); ok {
			r.out = v
			r.won = true
			r.fs = nil
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Wait blocks the calling goroutine until a child completes. It is
// shorthand for BlockOn(r).
func (r *RaceFuture[T]) Wait() T { return BlockOn[T](r) }
