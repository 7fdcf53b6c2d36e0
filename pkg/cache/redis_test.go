package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootbook/pkg/ratelimit"
)

func TestRedisWindowStore_GenerateKey(t *testing.T) {
	client := NewRedisClient("127.0.0.1:0", "", 0)
	defer client.Close()

	s := NewRedisWindowStore(client, "shootbook")
	assert.Equal(t, "shootbook:ratelimit:write:1.2.3.4", s.GenerateKey("ratelimit", "write:1.2.3.4"))
}

type fakeRedis struct {
	redis.Cmdable
	data map[string][]byte
	ttl  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(v))
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.([]byte)
	f.ttl[key] = expiration
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(n)
	return cmd
}

func TestRedisWindowStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client := newFakeRedis()
	s := NewRedisWindowStore(client, "shootbook")
	s.now = func() time.Time { return now }

	_, ok, err := s.Get(ctx, "write:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	e := ratelimit.Entry{Count: 3, ResetAt: now.Add(time.Minute)}
	require.NoError(t, s.Set(ctx, "write:1.2.3.4", e))
	assert.Equal(t, time.Minute, client.ttl["shootbook:ratelimit:write:1.2.3.4"])

	got, ok, err := s.Get(ctx, "write:1.2.3.4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Count)
	assert.True(t, got.ResetAt.Equal(e.ResetAt))

	require.NoError(t, s.Delete(ctx, "write:1.2.3.4"))
	_, ok, err = s.Get(ctx, "write:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisWindowStore_ExpiredWindowGetsMinimumTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client := newFakeRedis()
	s := NewRedisWindowStore(client, "shootbook")
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(context.Background(), "k", ratelimit.Entry{Count: 1, ResetAt: now.Add(-time.Second)}))
	assert.Equal(t, time.Second, client.ttl["shootbook:ratelimit:k"])
}

func TestRedisWindowStore_CorruptValue(t *testing.T) {
	client := newFakeRedis()
	client.data["shootbook:ratelimit:k"] = []byte("not json")
	s := NewRedisWindowStore(client, "shootbook")

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
}
