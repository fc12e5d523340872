package service

import "sync"

// Handle is the one caller-owned "current snapshot" reference. Snapshots
// themselves are immutable and safe for concurrent reads; the handle is
// the only mutable cell, and swaps go through the lock (single writer).
type Handle struct {
	mu  sync.RWMutex
	cur *Snapshot
}

func NewHandle() *Handle { return &Handle{} }

func (h *Handle) Set(s *Snapshot) {
	h.mu.Lock()
	h.cur = s
	h.mu.Unlock()
}

// Current returns the latest snapshot, or nil when no refresh has
// succeeded yet.
func (h *Handle) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}
