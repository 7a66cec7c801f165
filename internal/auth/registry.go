package auth

import (
	"context"
	"sync"
	"time"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/session"
)

type entry struct {
	mu   sync.Mutex
	flow *Flow

	// guarded by Registry.mu
	lastSeen time.Time
}

// Registry keeps one sign-in flow per session id. Flows live in memory; a
// restart sends users back to the credentials step, while their
// authenticated flag survives in the flag store.
//
// A flow untouched for longer than ttl is dropped, either when its session
// comes back or by Sweep. A ttl of zero keeps flows until Forget.
type Registry struct {
	ref   Reference
	store session.FlagStore
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	flows map[string]*entry
}

func NewRegistry(ref Reference, store session.FlagStore, ttl time.Duration) *Registry {
	return &Registry{
		ref:   ref,
		store: store,
		ttl:   ttl,
		now:   time.Now,
		flows: make(map[string]*entry),
	}
}

// With runs fn on the flow of sessionID, creating it in AwaitingCredentials
// when missing or expired. Calls for the same session are serialized; other
// sessions proceed in parallel.
func (r *Registry) With(sessionID string, fn func(*Flow) error) error {
	e := r.acquire(sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.flow)
}

func (r *Registry) acquire(sessionID string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.flows[sessionID]
	if !ok || r.expired(e, now) {
		e = &entry{flow: NewFlow(r.ref, session.New(sessionID, r.store))}
		r.flows[sessionID] = e
	}
	e.lastSeen = now

	return e
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

// Forget drops the flow of sessionID.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.flows, sessionID)
}

// Sweep drops every expired flow and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for id, e := range r.flows {
		if r.expired(e, now) {
			delete(r.flows, id)
			n++
		}
	}

	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (r *Registry) Session(sessionID string) *session.Session {
	return session.New(sessionID, r.store)
}
