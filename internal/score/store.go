// internal/score/store.go
//
// Best-score tracking. The store keeps the minimum attempts-to-win ever
// recorded on this device; absence is a valid state (no games won yet).

package score

import "sync"

// Store defines the persistence interface for the best score.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Best returns the stored best score and whether one exists.
	// Storage trouble degrades to "no score", never an error the
	// gameplay path has to handle.
	Best() (int, bool)

	// RecordIfBetter stores attempts as the new best if there is no
	// stored best or attempts is lower. Reports whether it updated.
	RecordIfBetter(attempts int) bool
}

// Memory is an in-process Store: the fallback when durable storage is
// unavailable, and the implementation tests use.
type Memory struct {
	mu   sync.Mutex
	best int
	set  bool
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Best() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, m.set
}

func (m *Memory) RecordIfBetter(attempts int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.set && attempts >= m.best {
		return false
	}
	m.best, m.set = attempts, true
	return true
}
