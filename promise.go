package await

import (
	"sync"

	"github.com/gammazero/deque"
)

// Promise is a one-shot value handed across goroutine boundaries: it
// implements Future on the consuming side and is resolved exactly
// once from any goroutine on the producing side. Multiple consumers
// may poll the same Promise; each pending poller's Waker is queued
// and all of them are woken on resolve, in registration order.
//
// The Promise sits on the computation side of the Future contract,
// so unlike the signal it may take a lock: Poll still never blocks
// the caller for more than the critical section.
type Promise[T any] struct {
	noCopy noCopy
	mu     sync.Mutex
	wakers deque.Deque[Waker]
	value  T
	done   bool
}

// NewPromise creates an unresolved Promise.
func NewPromise[T any]() *Promise[T] {
	return new(Promise[T])
}

// Resolve completes p with v and wakes every waiter registered so
// far. Wakers run outside the lock; a late poller finds the value
// directly and is never queued. Resolving twice panics.
func (p *Promise[T]) Resolve(v T) {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		panic("await: promise resolved twice")
	}
	p.value = v
	p.done = true

	wakers := make([]Waker, 0, p.wakers.Len())
	for p.wakers.Len() > 0 {
		wakers = append(wakers, p.wakers.PopFront())
	}
	p.mu.Unlock()

	for _, w := range wakers {
		w.Wake()
	}
}

// Poll implements Future, registering w until p is resolved.
func (p *Promise[T]) Poll(w Waker) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.value, true
	}

	p.wakers.PushBack(w)
	var zero T
	return zero, false
}

// Wait blocks the calling goroutine until p is resolved and returns
// the value. It is shorthand for BlockOn(p).
func (p *Promise[T]) Wait() T { return BlockOn[T](p) }
