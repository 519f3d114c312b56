package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/pylearn/internal/store"
)

// fakeClock is a settable clock shared by the manager's stores.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestManagerOpen(t *testing.T) {
	m := NewManager(ManagerOptions{})
	ctx := context.Background()

	st, u, err := m.Open(ctx, "johndoe")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if u.Points != 1250 {
		t.Errorf("expected bonus points, got %d", u.Points)
	}
	got, ok := m.Get(st.ID())
	if !ok || got != st {
		t.Fatal("expected session to be registered")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestManagerOpenEmptyUsername(t *testing.T) {
	m := NewManager(ManagerOptions{})

	st, _, err := m.Open(context.Background(), "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if st != nil {
		t.Error("expected no store on failed login")
	}
	if m.Len() != 0 {
		t.Errorf("failed login registered a session: Len() = %d", m.Len())
	}
}

func TestManagerSessionsIsolated(t *testing.T) {
	m := NewManager(ManagerOptions{})
	ctx := context.Background()

	a, _, _ := m.Open(ctx, "ada")
	b, _, _ := m.Open(ctx, "bob")

	a.CompleteLesson(ctx, 2)
	if l, _ := b.Lesson(2); l.IsCompleted {
		t.Error("completion leaked between managed sessions")
	}
}

func TestManagerClose(t *testing.T) {
	m := NewManager(ManagerOptions{})
	ctx := context.Background()

	st, _, _ := m.Open(ctx, "ada")
	m.Close(ctx, st.ID())

	if _, ok := m.Get(st.ID()); ok {
		t.Error("expected session removed after Close")
	}
	if _, ok := st.User(); ok {
		t.Error("expected store logged out after Close")
	}

	// Unknown IDs are ignored.
	m.Close(ctx, "missing")
}

func TestManagerSweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	m := NewManager(ManagerOptions{
		Store: Options{Now: clock.Now},
		TTL:   30 * time.Minute,
	})
	ctx := context.Background()

	idle, _, _ := m.Open(ctx, "idle")
	clock.Advance(20 * time.Minute)
	active, _, _ := m.Open(ctx, "active")
	clock.Advance(15 * time.Minute)
	active.Progress()

	if n := m.Sweep(ctx, clock.Now()); n != 1 {
		t.Errorf("Sweep() removed %d, want 1", n)
	}
	if _, ok := m.Get(idle.ID()); ok {
		t.Error("idle session should be expired")
	}
	if _, ok := idle.User(); ok {
		t.Error("expired session should be logged out")
	}
	if _, ok := m.Get(active.ID()); !ok {
		t.Error("active session should survive")
	}
}

func TestManagerSweepJournalsLogout(t *testing.T) {
	db, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clock := &fakeClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	m := NewManager(ManagerOptions{
		Store: Options{Now: clock.Now, Journal: db.ActivityRepo()},
		TTL:   time.Minute,
	})
	ctx := context.Background()

	st, _, err := m.Open(ctx, "ada")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	clock.Advance(time.Hour)

	if n := m.Sweep(ctx, clock.Now()); n != 1 {
		t.Fatalf("Sweep() removed %d, want 1", n)
	}
	counts, err := db.ActivityRepo().Counts(ctx, st.ID())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[store.ActionLogin] != 1 || counts[store.ActionLogout] != 1 {
		t.Errorf("expected one login and one logout, got %v", counts)
	}
}

func TestManagerSweepDisabled(t *testing.T) {
	m := NewManager(ManagerOptions{})
	m.Open(context.Background(), "ada")

	if n := m.Sweep(context.Background(), time.Now().Add(24*time.Hour)); n != 0 {
		t.Errorf("Sweep() with no TTL removed %d sessions", n)
	}
}

func TestManagerRunStops(t *testing.T) {
	m := NewManager(ManagerOptions{TTL: time.Minute, SweepInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
