package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/session"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()

	ref, err := NewReference(testEmail, testPassword, testCode, bcrypt.MinCost)
	require.NoError(t, err)

	return NewRegistry(ref, session.NewMemoryStore(), ttl)
}

func stateOf(t *testing.T, reg *Registry, sid string) State {
	t.Helper()

	var st State
	require.NoError(t, reg.With(sid, func(f *Flow) error { st = f.State(); return nil }))
	return st
}

func TestRegistryKeepsFlowPerSession(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	require.NoError(t, reg.With("a", func(f *Flow) error {
		return f.SubmitCredentials(testEmail, testPassword)
	}))

	assert.Equal(t, AwaitingSecondFactor, stateOf(t, reg, "a"))
	assert.Equal(t, AwaitingCredentials, stateOf(t, reg, "b"))

	reg.Forget("a")
	assert.Equal(t, AwaitingCredentials, stateOf(t, reg, "a"))
}

func TestRegistrySweepDropsExpiredFlows(t *testing.T) {
	reg := newTestRegistry(t, time.Minute)
	now := time.Now()
	reg.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		_ = reg.With(fmt.Sprintf("anon-%d", i), func(f *Flow) error {
			return f.SubmitCredentials(testEmail, "wrong")
		})
	}
	require.Len(t, reg.flows, 1000)

	now = now.Add(30 * time.Second)
	_ = stateOf(t, reg, "anon-0")

	now = now.Add(45 * time.Second)
	assert.Equal(t, 999, reg.Sweep())
	assert.Len(t, reg.flows, 1)
	assert.Contains(t, reg.flows, "anon-0")
}

func TestRegistryRestartsExpiredFlowOnAccess(t *testing.T) {
	reg := newTestRegistry(t, time.Minute)
	now := time.Now()
	reg.now = func() time.Time { return now }

	require.NoError(t, reg.With("a", func(f *Flow) error {
		return f.SubmitCredentials(testEmail, testPassword)
	}))

	now = now.Add(59 * time.Second)
	assert.Equal(t, AwaitingSecondFactor, stateOf(t, reg, "a"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, AwaitingCredentials, stateOf(t, reg, "a"))
}

func TestRegistryZeroTTLKeepsFlows(t *testing.T) {
	reg := newTestRegistry(t, 0)
	now := time.Now()
	reg.now = func() time.Time { return now }

	_ = stateOf(t, reg, "a")
	now = now.Add(24 * time.Hour)

	assert.Zero(t, reg.Sweep())
	assert.Len(t, reg.flows, 1)
}

func TestRegistryRunsSessionsInParallel(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	entered := make(chan struct{})
	release := make(chan struct{})
	slow := make(chan error, 1)
	go func() {
		slow <- reg.With("a", func(*Flow) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	other := make(chan error, 1)
	go func() {
		other <- reg.With("b", func(f *Flow) error {
			return f.SubmitCredentials(testEmail, testPassword)
		})
	}()

	select {
	case err := <-other:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session b waited for session a")
	}

	close(release)
	require.NoError(t, <-slow)
}

func TestRegistrySerializesOneSession(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		inside int
		peak   int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.With("a", func(*Flow) error {
				mu.Lock()
				inside++
				peak = max(peak, inside)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, peak)
}

func TestRegistryRunSweeperStopsWithContext(t *testing.T) {
	reg := newTestRegistry(t, time.Nanosecond)
	_ = stateOf(t, reg, "a")
	time.Sleep(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	done := make(chan error, 1)
	go func() {
		done <- reg.RunSweeper(ctx, time.Millisecond, func(n int) {
			select {
			case swept <- n:
			default:
			}
		})
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))
}
