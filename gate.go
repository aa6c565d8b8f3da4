package lovetree

import "sync/atomic"

// Gate is a one-shot latch that holds the animation at the seed until the
// first accepted click. Once open it stays open.
type Gate struct {
	open atomic.Bool
}

// Open flips the gate. It reports true only for the call that opened it.
func (g *Gate) Open() bool {
	return g.open.CompareAndSwap(false, true)
}

// IsOpen reports whether the gate has been opened.
func (g *Gate) IsOpen() bool {
	return g.open.Load()
}
