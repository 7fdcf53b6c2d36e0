package ratelimit_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/config"
	"shootbook/internal/infra"
	"shootbook/pkg/cache"
	mem "shootbook/pkg/memcache"
	"shootbook/pkg/ratelimit"
)

var Module = fx.Provide(provideStore, provideLimiter, provideRules)

// Rules are the per-class limits applied by the router.
type Rules struct {
	Write ratelimit.Rule
	Read  ratelimit.Rule
}

// provideStore shares windows through Redis when REDIS_ADDR is set and
// falls back to the in-process store otherwise.
func provideStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) ratelimit.Store {
	if cfg.Redis.Addr == "" {
		logger.Info("rate limiter using in-process store")
		return mem.NewWindowStore()
	}

	client, err := infra.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("redis unavailable, rate limiter using in-process store", zap.Error(err))
		return mem.NewWindowStore()
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return client.Close() },
	})
	logger.Info("rate limiter using redis", zap.String("addr", cfg.Redis.Addr))
	return cache.NewRedisWindowStore(client, "shootbook")
}

func provideLimiter(store ratelimit.Store) *ratelimit.Limiter {
	return ratelimit.NewLimiter(store)
}

func provideRules(cfg *config.Config) Rules {
	return Rules{
		Write: ratelimit.Rule{Limit: cfg.RateLimit.WriteLimit, Window: cfg.RateLimit.Window},
		Read:  ratelimit.Rule{Limit: cfg.RateLimit.ReadLimit, Window: cfg.RateLimit.Window},
	}
}
