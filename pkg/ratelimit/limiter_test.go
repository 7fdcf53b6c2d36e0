package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	data   map[string]Entry
	swept  int
	getErr error
}

func newMapStore() *mapStore { return &mapStore{data: map[string]Entry{}} }

func (m *mapStore) Get(_ context.Context, key string) (Entry, bool, error) {
	if m.getErr != nil {
		return Entry{}, false, m.getErr
	}
	e, ok := m.data[key]
	return e, ok, nil
}

func (m *mapStore) Set(_ context.Context, key string, e Entry) error {
	m.data[key] = e
	return nil
}

func (m *mapStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapStore) Sweep(_ context.Context, now time.Time) int {
	m.swept++
	n := 0
	for k, e := range m.data {
		if !now.Before(e.ResetAt) {
			delete(m.data, k)
			n++
		}
	}
	return n
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLimiter_FirstRequestAllowed(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := NewLimiter(newMapStore(), WithClock(clock.Now))
	rule := Rule{Limit: 5, Window: time.Minute}

	res, err := l.Allow(context.Background(), "write:1.2.3.4", rule)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
	assert.Equal(t, clock.t.Add(time.Minute), res.ResetAt)
}

func TestLimiter_DeniesAfterLimit(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := NewLimiter(newMapStore(), WithClock(clock.Now))
	rule := Rule{Limit: 3, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "k", rule)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
		assert.Equal(t, 3-(i+1), res.Remaining)
	}

	res, err := l.Allow(ctx, "k", rule)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, clock.t.Add(time.Minute), res.ResetAt)
}

func TestLimiter_ResetsAfterWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := NewLimiter(newMapStore(), WithClock(clock.Now))
	rule := Rule{Limit: 1, Window: time.Minute}
	ctx := context.Background()

	res, _ := l.Allow(ctx, "k", rule)
	assert.True(t, res.Allowed)
	res, _ = l.Allow(ctx, "k", rule)
	assert.False(t, res.Allowed)

	clock.Advance(time.Minute)
	res, err := l.Allow(ctx, "k", rule)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := NewLimiter(newMapStore())
	rule := Rule{Limit: 1, Window: time.Minute}
	ctx := context.Background()

	a, _ := l.Allow(ctx, "a", rule)
	b, _ := l.Allow(ctx, "b", rule)
	assert.True(t, a.Allowed)
	assert.True(t, b.Allowed)
}

func TestLimiter_SweepsWhenSampled(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	store := newMapStore()
	store.data["stale"] = Entry{Count: 9, ResetAt: clock.t.Add(-time.Second)}

	l := NewLimiter(store, WithClock(clock.Now), WithSweepRate(0.01, func() float64 { return 0.005 }))
	_, err := l.Allow(context.Background(), "fresh", Rule{Limit: 2, Window: time.Minute})
	require.NoError(t, err)

	assert.Equal(t, 1, store.swept)
	_, ok := store.data["stale"]
	assert.False(t, ok)
}

func TestLimiter_NoSweepWhenNotSampled(t *testing.T) {
	store := newMapStore()
	l := NewLimiter(store, WithSweepRate(0.01, func() float64 { return 0.5 }))
	_, err := l.Allow(context.Background(), "k", Rule{Limit: 2, Window: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, 0, store.swept)
}

func TestLimiter_StoreError(t *testing.T) {
	store := newMapStore()
	store.getErr = errors.New("boom")
	l := NewLimiter(store)
	_, err := l.Allow(context.Background(), "k", Rule{Limit: 2, Window: time.Minute})
	assert.Error(t, err)
}
