package await

import (
	"runtime"
	"sync"
)

const (
	// spinRounds is the number of doubling busy-spin bursts attempted
	// before yielding; yieldRounds is the number of Gosched calls
	// attempted before giving up and recommending a park. Tuning
	// constants, not contracts.
	spinRounds  = 5
	yieldRounds = 5
)

// multicore reports whether more than one goroutine can run at once.
// GOMAXPROCS, not the physical core count, bounds how many notifiers
// can make progress concurrently. Queried once, cached for the life
// of the process.
var multicore = sync.OnceValue(func() bool {
	return runtime.GOMAXPROCS(0) > 1
})

// spinWait retries pred through escalating busy-spin bursts and then
// cooperative yields, returning true the first moment pred holds and
// false once the budget is exhausted, meaning the caller should park
// instead. On a single-proc setup busy-spinning is skipped entirely:
// nothing can change pred until we yield.
func spinWait(pred func() bool) bool {
	if pred() {
		return true
	}
	if multicore() {
		for round := 1; round <= spinRounds; round++ {
			spin(1 << round)
			if pred() {
				return true
			}
		}
		for range yieldRounds {
			runtime.Gosched()
			if pred() {
				return true
			}
		}
		return false
	}
	for range spinRounds + yieldRounds {
		runtime.Gosched()
		if pred() {
			return true
		}
	}
	return false
}

// spin burns a few cycles without entering the scheduler. Go exposes
// no PAUSE-style hint to user code, so this is a plain loop.
func spin(n int) {
	for i := 0; i < n; i++ {
	}
}
