package await

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllReady(t *testing.T) {
	r := require.New(t)

	vs := All[int](Ready(1), Ready(2), Ready(3)).Wait()

	r.Equal([]int{1, 2, 3}, vs)
}

func TestAllEmpty(t *testing.T) {
	r := require.New(t)

	r.Empty(All[int]().Wait())
}

func TestAllPromises(t *testing.T) {
	r := require.New(t)

	a := NewPromise[int]()
	b := NewPromise[int]()
	c := NewPromise[int]()

	go func() {
		time.Sleep(15 * time.Millisecond)
		b.Resolve(2)
	}()
	go func() {
		time.Sleep(5 * time.Millisecond)
		c.Resolve(3)
	}()
	go a.Resolve(1)

	// Values come back in argument order, not completion order.
	r.Equal([]int{1, 2, 3}, All[int](a, b, c).Wait())
}

func TestAllMixed(t *testing.T) {
	r := require.New(t)

	p := NewPromise[int]()
	go p.Resolve(2)

	f := Async(func(co *Coro) int {
		co.Yield()
		return 3
	})

	r.Equal([]int{1, 2, 3}, All[int](Ready(1), p, f).Wait())
}

func TestRaceFirstReady(t *testing.T) {
	r := require.New(t)

	pending := NewPromise[int]()

	r.Equal(9, Race[int](pending, Ready(9)).Wait())
}

func TestRacePromises(t *testing.T) {
	r := require.New(t)

	fast := NewPromise[string]()
	slow := NewPromise[string]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		fast.Resolve("fast")
	}()
	go func() {
		time.Sleep(50 * time.Millisecond)
		slow.Resolve("slow")
	}()

	r.Equal("fast", Race[string](slow, fast).Wait())
}

func TestRaceEmptyPanics(t *testing.T) {
	r := require.New(t)

	r.PanicsWithValue("await: race of no futures", func() {
		Race[int]()
	})
}
