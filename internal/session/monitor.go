// ABOUTME: Derives the login state from the session store
// ABOUTME: Reacts to store change notifications with a periodic re-check fallback

package session

import (
	"context"
	"sync"
	"time"
)

// State is the derived login state.
type State int

const (
	// StateChecking is the transient initial state before the store
	// has been read for the first time.
	StateChecking State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "checking"
	}
}

// DefaultCheckInterval bounds how long an externally mutated store can
// go unnoticed. Store changes made through this process are picked up
// immediately via Subscribe.
const DefaultCheckInterval = time.Second

// Monitor re-derives the login state from a Store. The primary signal
// is the store's change notification; a ticker covers stores mutated
// by another process sharing the same config directory.
type Monitor struct {
	store    Store
	interval time.Duration

	mu      sync.RWMutex
	state   State
	changes chan State
}

// NewMonitor creates a monitor over the given store using the default
// check interval.
func NewMonitor(store Store) *Monitor {
	return NewMonitorInterval(store, DefaultCheckInterval)
}

// NewMonitorInterval creates a monitor with an explicit check interval.
func NewMonitorInterval(store Store, interval time.Duration) *Monitor {
	return &Monitor{
		store:    store,
		interval: interval,
		state:    StateChecking,
		changes:  make(chan State, 8),
	}
}

// State returns the most recently derived state.
func (m *Monitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Changes delivers state transitions. The initial settle from
// StateChecking is delivered as the first transition.
func (m *Monitor) Changes() <-chan State {
	return m.changes
}

// Run settles the state immediately, then keeps it current until the
// context is canceled.
func (m *Monitor) Run(ctx context.Context) {
	m.check()

	sub := m.store.Subscribe()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub:
			m.check()
		case <-ticker.C:
			m.check()
		}
	}
}

// check reads the store and publishes a transition if the derived
// state differs from the current one.
func (m *Monitor) check() {
	next := StateUnauthenticated
	if _, ok := m.store.Token(); ok {
		next = StateAuthenticated
	}

	m.mu.Lock()
	changed := m.state != next
	m.state = next
	m.mu.Unlock()

	if changed {
		select {
		case m.changes <- next:
		default:
		}
	}
}
