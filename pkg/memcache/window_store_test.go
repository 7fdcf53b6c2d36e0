package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootbook/pkg/ratelimit"
)

func TestWindowStore_SetGetDelete(t *testing.T) {
	s := NewWindowStore()
	ctx := context.Background()
	reset := time.Now().Add(time.Minute)

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", ratelimit.Entry{Count: 2, ResetAt: reset}))
	e, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, e.Count)

	require.NoError(t, s.Delete(ctx, "k"))
	assert.Equal(t, 0, s.Len())
}

func TestWindowStore_Sweep(t *testing.T) {
	s := NewWindowStore()
	ctx := context.Background()
	now := time.Now()

	_ = s.Set(ctx, "old", ratelimit.Entry{Count: 1, ResetAt: now.Add(-time.Second)})
	_ = s.Set(ctx, "edge", ratelimit.Entry{Count: 1, ResetAt: now})
	_ = s.Set(ctx, "live", ratelimit.Entry{Count: 1, ResetAt: now.Add(time.Minute)})

	assert.Equal(t, 2, s.Sweep(ctx, now))
	assert.Equal(t, 1, s.Len())
}

func TestWindowStore_WithLimiter(t *testing.T) {
	l := ratelimit.NewLimiter(NewWindowStore())
	rule := ratelimit.Rule{Limit: 2, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := l.Allow(ctx, "ip", rule)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
	res, err := l.Allow(ctx, "ip", rule)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}
