// Package ratelimit implements a fixed-window request counter over a
// pluggable Store, so a shared store can replace the in-process one.
package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Entry is the counter state of one client in the current window.
type Entry struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry) error
	Delete(ctx context.Context, key string) error
}

// Sweeper is implemented by stores that must drop expired entries
// themselves. Stores with native expiry do not need it.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) int
}

type Rule struct {
	Limit  int
	Window time.Duration
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

const DefaultSweepRate = 0.01

type Limiter struct {
	mu        sync.Mutex
	store     Store
	now       func() time.Time
	random    func() float64
	sweepRate float64
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithSweepRate sets the fraction of calls that trigger a sweep of expired
// entries. random supplies values in [0,1); nil keeps math/rand.
func WithSweepRate(rate float64, random func() float64) Option {
	return func(l *Limiter) {
		l.sweepRate = rate
		if random != nil {
			l.random = random
		}
	}
}

func NewLimiter(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:     store,
		now:       time.Now,
		random:    rand.Float64,
		sweepRate: DefaultSweepRate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow counts one request for key under rule. The first request of a
// window is always allowed; request Limit+1 inside the same window is not.
func (l *Limiter) Allow(ctx context.Context, key string, rule Rule) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeSweep(ctx, now)

	e, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return Result{}, err
	}

	if !ok || !now.Before(e.ResetAt) {
		e = Entry{Count: 1, ResetAt: now.Add(rule.Window)}
		if err := l.store.Set(ctx, key, e); err != nil {
			return Result{}, err
		}
		return Result{Allowed: true, Limit: rule.Limit, Remaining: rule.Limit - 1, ResetAt: e.ResetAt}, nil
	}

	if e.Count >= rule.Limit {
		return Result{Allowed: false, Limit: rule.Limit, Remaining: 0, ResetAt: e.ResetAt}, nil
	}

	e.Count++
	if err := l.store.Set(ctx, key, e); err != nil {
		return Result{}, err
	}
	return Result{Allowed: true, Limit: rule.Limit, Remaining: rule.Limit - e.Count, ResetAt: e.ResetAt}, nil
}

func (l *Limiter) maybeSweep(ctx context.Context, now time.Time) {
	sw, ok := l.store.(Sweeper)
	if !ok || l.sweepRate <= 0 {
		return
	}
	if l.random() < l.sweepRate {
		sw.Sweep(ctx, now)
	}
}
