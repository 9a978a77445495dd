// Package session keeps each user's conversation context in memory and
// serializes work per user. Different users never wait on each other
// beyond a map lookup.
package session

import (
	"sync"
	"time"

	"wordtrainer/internal/domain"
)

type entry struct {
	mu       sync.Mutex
	sess     domain.Session
	lastSeen time.Time
	removed  bool
}

// Manager owns all live sessions
type Manager struct {
	mu      sync.Mutex
	entries map[int64]*entry
	now     func() time.Time
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		entries: make(map[int64]*entry),
		now:     time.Now,
	}
}

// Acquire locks the user's session and returns it with its release func.
// isNew is true when no session existed, in which case it starts idle.
// The session must not be used after release.
func (m *Manager) Acquire(userID int64) (sess *domain.Session, isNew bool, release func()) {
	for {
		m.mu.Lock()
		e, ok := m.entries[userID]
		if !ok {
			e = &entry{}
			m.entries[userID] = e
		}
		m.mu.Unlock()

		e.mu.Lock()
		if e.removed {
			// pruned between lookup and lock
			e.mu.Unlock()
			continue
		}
		e.lastSeen = m.now()
		return &e.sess, !ok, e.mu.Unlock
	}
}

// Snapshot returns a copy of the user's session without creating one
func (m *Manager) Snapshot(userID int64) (domain.Session, bool) {
	m.mu.Lock()
	e, ok := m.entries[userID]
	m.mu.Unlock()
	if !ok {
		return domain.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return domain.Session{}, false
	}
	return e.sess, true
}

// Prune drops sessions idle for longer than ttl and returns how many were
// removed. Sessions in use are left alone.
func (m *Manager) Prune(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastSeen.Before(cutoff) {
			e.removed = true
			delete(m.entries, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
