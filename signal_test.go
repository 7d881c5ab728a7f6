package await

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalWakeBeforeWait(t *testing.T) {
	r := require.New(t)

	s := newSignal()
	s.Wake()
	s.wait()

	r.Equal(stateWaiting, s.state.Load())
}

func TestSignalRepeatedWakes(t *testing.T) {
	r := require.New(t)

	s := newSignal()
	for i := 0; i < 5; i++ {
		s.Wake()
	}
	s.wait()

	r.Equal(stateWaiting, s.state.Load())
}

func TestSignalWakeWhileParked(t *testing.T) {
	r := require.New(t)

	s := newSignal()
	start := time.Now()

	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Wake()
	}()

	s.wait()

	r.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
	r.Equal(stateWaiting, s.state.Load())
}

func TestSignalCrossGoroutineRounds(t *testing.T) {
	r := require.New(t)

	s := newSignal()
	start := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for range start {
			s.Wake()
		}
	}()

	for i := 0; i < 5000; i++ {
		start <- struct{}{}
		s.wait()
	}

	close(start)
	<-done

	r.Equal(stateWaiting, s.state.Load())
}

func TestSignalManyConcurrentWakers(t *testing.T) {
	r := require.New(t)

	s := newSignal()

	for round := 0; round < 200; round++ {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Wake()
			}()
		}

		s.wait()
		wg.Wait()

		// Wakes landing after wait returned leave the flag set;
		// claim it so the next round starts clean.
		s.consume()
		r.Equal(stateWaiting, s.state.Load())
	}
}

func TestSignalReuseAfterWait(t *testing.T) {
	r := require.New(t)

	s := newSignal()
	for i := 0; i < 100; i++ {
		go s.Wake()
		s.wait()
	}

	r.Equal(stateWaiting, s.state.Load())
}
