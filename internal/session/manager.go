package session

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/pylearn/internal/catalog"
)

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// Store is applied to every session the manager opens.
	Store Options

	// TTL is how long a session may sit idle before Sweep removes it.
	// Zero disables expiry.
	TTL time.Duration

	// SweepInterval is the Run ticker period. Defaults to one minute.
	SweepInterval time.Duration

	// OnSweep is called after each sweep that removed sessions.
	OnSweep func(removed int)
}

// Manager keeps one isolated Store per session ID. Stores are never shared
// between sessions.
type Manager struct {
	opts ManagerOptions

	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewManager creates an empty Manager.
func NewManager(opts ManagerOptions) *Manager {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Minute
	}
	return &Manager{
		opts:     opts,
		sessions: make(map[string]*Store),
	}
}

// Open creates a session and logs username in. The session is registered
// only if the login succeeds.
func (m *Manager) Open(ctx context.Context, username string) (*Store, catalog.User, error) {
	st := NewStore(m.opts.Store)
	u, err := st.Login(ctx, username)
	if err != nil {
		return nil, catalog.User{}, err
	}

	m.mu.Lock()
	m.sessions[st.ID()] = st
	m.mu.Unlock()
	return st, u, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[id]
	return st, ok
}

// Close logs the session out and removes it. Unknown IDs are ignored.
func (m *Manager) Close(ctx context.Context, id string) {
	m.mu.Lock()
	st, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		st.Logout(ctx)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep logs out and removes sessions idle for longer than the TTL as of
// now, returning how many were removed.
func (m *Manager) Sweep(ctx context.Context, now time.Time) int {
	if m.opts.TTL <= 0 {
		return 0
	}

	var expired []*Store
	m.mu.Lock()
	for id, st := range m.sessions {
		if now.Sub(st.LastActive()) > m.opts.TTL {
			delete(m.sessions, id)
			expired = append(expired, st)
		}
	}
	m.mu.Unlock()

	for _, st := range expired {
		st.Logout(ctx)
	}
	return len(expired)
}

// Run sweeps expired sessions on a ticker until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.Sweep(ctx, now); n > 0 && m.opts.OnSweep != nil {
				m.opts.OnSweep(n)
			}
		}
	}
}
