// Package session models the client-local authenticated flag as an explicit
// session context instead of ambient storage.
package session

import (
	"context"
	"fmt"
	"sync"
)

const (
	flagKey   = "isAuthenticated"
	flagValue = "true"
)

// FlagStore is a small key/value store holding session flags.
type FlagStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Session is one browser session. Its authenticated flag lives in the store
// under "<id>:isAuthenticated".
type Session struct {
	ID    string
	store FlagStore
}

func New(id string, store FlagStore) *Session {
	return &Session{ID: id, store: store}
}

func (s *Session) key() string {
	return s.ID + ":" + flagKey
}

// IsAuthenticated reports whether the flag holds the "true" sentinel. An
// absent flag means not authenticated.
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	const op = "session.IsAuthenticated"

	v, ok, err := s.store.Get(ctx, s.key())
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok && v == flagValue, nil
}

// SetAuthenticated writes the "true" sentinel, or removes the flag when
// authenticated is false.
func (s *Session) SetAuthenticated(ctx context.Context, authenticated bool) error {
	const op = "session.SetAuthenticated"

	var err error
	if authenticated {
		err = s.store.Set(ctx, s.key(), flagValue)
	} else {
		err = s.store.Remove(ctx, s.key())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MemoryStore keeps flags in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	flags map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.flags[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flags[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.flags, key)
	return nil
}
