package gdrom

import "sync"

// gate serializes all command traffic over the shared G1 bus. Exactly
// one holder may be inside the submit-to-terminal-outcome window of a
// command at a time. It belongs to a Device rather than living as
// package state so that independent devices (or a device and its test
// double) never contend with each other.
type gate struct {
	mu sync.Mutex
}

// lock blocks the caller until exclusive bus access is granted.
func (g *gate) lock() {
	g.mu.Lock()
}

// tryLock attempts to acquire the bus without blocking and reports
// whether it succeeded. Safe to call from contexts that must not
// suspend, such as a periodic cache-flush check.
func (g *gate) tryLock() bool {
	return g.mu.TryLock()
}

// unlock releases exclusive bus access.
func (g *gate) unlock() {
	g.mu.Unlock()
}
