package await

import (
	"context"
	"runtime/trace"
	"sync"
)

const (
	blockTraceTaskType = "await-block"
	blockTraceCategory = "await"
)

// signals pools wait primitives so repeated BlockOn calls reuse them
// instead of allocating. A signal is held exclusively for the
// duration of one BlockOn call, preserving the single-waiter rule,
// and always goes back in the WAITING state.
var signals = sync.Pool{New: func() any { return newSignal() }}

// BlockOn drives f on the calling goroutine until it completes, then
// returns its value. Between polls the goroutine waits on a pooled
// signal, spinning briefly before parking, so wakes that arrive
// within microseconds never pay for a sleep/resume round-trip.
//
// The Waker handed to f is live for the whole call: f may invoke it
// from any goroutine at any time, including synchronously from
// inside Poll before the caller has blocked.
//
// A panic raised by f.Poll propagates to the caller unchanged. There
// is no timeout: if f never completes and never wakes its Waker,
// BlockOn blocks forever.
func BlockOn[T any](f Future[T]) T {
	ctx, tracer := trace.NewTask(context.Background(), blockTraceTaskType)
	defer tracer.End()

	s := signals.Get().(*signal)
	defer signals.Put(s)

	for {
		if v, ok := f.Poll(s); ok {
			trace.Log(ctx, blockTraceCategory, "READY")
			return v
		}
		trace.Log(ctx, blockTraceCategory, "PENDING")
		s.wait()
	}
}
