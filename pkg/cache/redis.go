package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shootbook/pkg/ratelimit"
)

// RedisWindowStore shares rate-limit windows between instances. Keys expire
// with their window so no sweeping is needed.
type RedisWindowStore struct {
	client      redis.Cmdable
	serviceName string
	now         func() time.Time
}

func NewRedisWindowStore(client redis.Cmdable, serviceName string) *RedisWindowStore {
	return &RedisWindowStore{client: client, serviceName: serviceName, now: time.Now}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (r *RedisWindowStore) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, key)
}

func (r *RedisWindowStore) Get(ctx context.Context, key string) (ratelimit.Entry, bool, error) {
	raw, err := r.client.Get(ctx, r.GenerateKey("ratelimit", key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ratelimit.Entry{}, false, nil
	}
	if err != nil {
		return ratelimit.Entry{}, false, err
	}
	var e ratelimit.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return ratelimit.Entry{}, false, fmt.Errorf("decode window %s: %w", key, err)
	}
	return e, true, nil
}

func (r *RedisWindowStore) Set(ctx context.Context, key string, e ratelimit.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ttl := e.ResetAt.Sub(r.now())
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.client.Set(ctx, r.GenerateKey("ratelimit", key), raw, ttl).Err()
}

func (r *RedisWindowStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.GenerateKey("ratelimit", key)).Err()
}
