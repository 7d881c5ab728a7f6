package await

import "sync/atomic"

// signal states. A signal cycles WAITING -> NOTIFIED -> WAITING on
// the fast path, or WAITING -> PARKED -> NOTIFIED -> WAITING when
// the waiter has to sleep.
const (
	stateWaiting uint32 = iota // no wake pending, waiter not committed to sleeping
	stateParked                // waiter is sleeping and must be sent the park token
	stateNotified              // a wake was recorded and not yet consumed
)

// signal is the wait primitive behind BlockOn: a single-waiter,
// multi-notifier rendezvous. The waiter calls wait; any number of
// goroutines may call Wake concurrently, including the waiter itself
// during a Poll. All state transitions go through the atomic flag, so
// the no-park paths are lock-free; the park channel holds the wakeup
// token and is only touched once a waiter has committed to sleeping.
//
// Signals are reused through a pool, so wait leaves the state at
// stateWaiting on every return path.
type signal struct {
	noCopy noCopy
	state  atomic.Uint32
	park   chan struct{}
}

func newSignal() *signal {
	return &signal{park: make(chan struct{}, 1)}
}

// consume claims a pending wake, resetting the signal for the next
// round. It is the predicate the spin phase retries.
func (s *signal) consume() bool {
	return s.state.CompareAndSwap(stateNotified, stateWaiting)
}

// wait blocks the calling goroutine until a Wake has been observed.
// It first spins briefly in case a wake is imminent, then commits to
// parking. A Wake landing in the window between giving up spinning
// and committing makes the PARKED transition fail, in which case no
// park happens at all.
func (s *signal) wait() {
	if spinWait(s.consume) {
		return
	}

	if !s.state.CompareAndSwap(stateWaiting, stateParked) {
		// A wake arrived during the race window; reset and go.
		s.state.Store(stateWaiting)
		return
	}

	// A stale park token from an earlier round can wake us before a
	// wake is actually pending, so reclaim the state in a loop.
	for !s.consume() {
		<-s.park
	}
}

// Wake implements Waker. Safe for repeated, concurrent use from any
// goroutine. Only the notifier that finds the waiter parked delivers
// the park token; everyone else just leaves the flag set.
func (s *signal) Wake() {
	if s.state.Swap(stateNotified) == stateParked {
		select {
		case s.park <- struct{}{}:
		default:
		}
	}
}
