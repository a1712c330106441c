// Package delay tracks the deferred steps of a game (the pause before a
// mismatched pair flips back, or before the next word is shown) so that a
// reset or teardown can cancel them. Timers themselves are owned by the
// caller; a Gate only decides whether a fired Ticket is still current.
package delay

import (
	"sync"
	"time"
)

// Ticket identifies one scheduled step.
type Ticket struct {
	epoch uint64
	seq   uint64

	// After is how long the caller should wait before resolving the ticket.
	After time.Duration
}

// IsZero reports whether t was never issued.
func (t Ticket) IsZero() bool {
	return t.seq == 0
}

// Gate issues tickets and invalidates them on Reset.
type Gate struct {
	mu      sync.Mutex
	epoch   uint64
	seq     uint64
	pending map[uint64]struct{}
}

// NewGate creates an empty Gate.
func NewGate() *Gate {
	return &Gate{pending: make(map[uint64]struct{})}
}

// Schedule issues a ticket that should be resolved after d.
func (g *Gate) Schedule(d time.Duration) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.pending[g.seq] = struct{}{}
	return Ticket{epoch: g.epoch, seq: g.seq, After: d}
}

// Claim consumes a ticket. It returns false if the ticket was cancelled,
// already claimed, or issued before the last Reset.
func (g *Gate) Claim(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.epoch != g.epoch {
		return false
	}
	if _, ok := g.pending[t.seq]; !ok {
		return false
	}
	delete(g.pending, t.seq)
	return true
}

// Cancel drops a single pending ticket.
func (g *Gate) Cancel(t Ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.epoch == g.epoch {
		delete(g.pending, t.seq)
	}
}

// Reset invalidates every outstanding ticket.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.epoch++
	clear(g.pending)
}

// Pending returns the number of tickets awaiting resolution.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}
