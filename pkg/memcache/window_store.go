// pkg/memcache/window_store.go
package mem

import (
	"context"
	"sync"
	"time"

	"shootbook/pkg/ratelimit"
)

// WindowStore keeps rate-limit windows in process memory. It is only exact
// for a single instance.
type WindowStore struct {
	mu   sync.RWMutex
	data map[string]ratelimit.Entry
}

func NewWindowStore() *WindowStore {
	return &WindowStore{
		data: make(map[string]ratelimit.Entry),
	}
}

func (s *WindowStore) Get(_ context.Context, key string) (ratelimit.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[key]
	return e, ok, nil
}

func (s *WindowStore) Set(_ context.Context, key string, e ratelimit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = e
	return nil
}

func (s *WindowStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Sweep removes every window that has ended by now and reports how many.
func (s *WindowStore) Sweep(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, e := range s.data {
		if !now.Before(e.ResetAt) {
			delete(s.data, k)
			n++
		}
	}
	return n
}

func (s *WindowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ ratelimit.Sweeper = (*WindowStore)(nil)
