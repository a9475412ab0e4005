// Package cache is the gateway's read-through collection cache. Keys are
// structured tuples; consumers read through Query and mutations mark keys
// stale through Invalidate so the next read re-fetches from upstream.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/pkg/logger"
)

// Key is a structured cache key, e.g. {"referrals", id, "orders"}.
type Key []string

func (k Key) String() string { return strings.Join(k, "/") }

// Mirror is an optional second-level store shared between gateway replicas.
type Mirror interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
	Del(ctx context.Context, keys ...string)
}

type entry struct {
	value     any
	err       error
	loaded    bool
	stale     bool
	loading   bool
	gen       uint64 // bumped by Invalidate; a fetch only counts if it began at the current gen
	done      chan struct{}
	fetchedAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	mirror  Mirror
	logger  logger.ZapLogger
}

func NewStore(mirror Mirror, log logger.ZapLogger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		mirror:  mirror,
		logger:  log,
	}
}

// Invalidate marks keys stale so the next read re-fetches. Related keys are
// passed together (updating a category invalidates both the categories and
// subcategories collections).
func (s *Store) Invalidate(ctx context.Context, keys ...Key) {
	flat := make([]string, 0, len(keys))
	s.mu.Lock()
	for _, k := range keys {
		ks := k.String()
		flat = append(flat, ks)
		if e, ok := s.entries[ks]; ok {
			e.stale = true
			e.err = nil
			e.gen++
		}
	}
	s.mu.Unlock()

	if s.mirror != nil {
		s.mirror.Del(ctx, flat...)
	}
	s.logger.Debug("cache invalidated", zap.Strings("keys", flat))
}

// Err returns the error recorded by the last failed fetch of key, if any.
func (s *Store) Err(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key.String()]; ok {
		return e.err
	}
	return nil
}

// Loading reports whether a fetch for key is currently in flight.
func (s *Store) Loading(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key.String()]; ok {
		return e.loading
	}
	return false
}

// Query returns the cached value for key, fetching it when absent or stale.
// Concurrent readers of the same key share one fetch. When enabled is false
// (no auth token yet) the query is suppressed and the zero value returned.
// A canceled context abandons the fetch without recording its result.
func Query[T any](ctx context.Context, s *Store, key Key, enabled bool, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if !enabled {
		return zero, nil
	}
	ks := key.String()

	var gen uint64
	for {
		s.mu.Lock()
		e, ok := s.entries[ks]
		if !ok {
			e = &entry{}
			s.entries[ks] = e
		}
		if e.loaded && !e.stale {
			v, _ := e.value.(T)
			s.mu.Unlock()
			return v, nil
		}
		if e.loading {
			done := e.done
			s.mu.Unlock()
			select {
			case <-done:
				continue // re-read the entry the fetcher filled
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
		e.loading = true
		e.done = make(chan struct{})
		gen = e.gen
		s.mu.Unlock()
		break
	}

	if s.mirror != nil {
		if data, ok := s.mirror.Get(ctx, ks); ok {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				s.fill(ks, v, nil, false, gen)
				return v, nil
			}
			s.logger.Warn("cache mirror decode failed", zap.String("key", ks))
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// The caller went away; drop the result entirely.
			s.abandon(ks)
			return zero, err
		}
		s.fill(ks, zero, err, false, gen)
		return zero, err
	}

	s.fill(ks, v, nil, true, gen)
	return v, nil
}

// fill stores a fetch result. gen is the entry generation the fetch started
// at; an Invalidate that landed mid-fetch bumps it, in which case the result
// is handed to the caller but the key stays stale so the next read re-fetches.
func (s *Store) fill(key string, value any, err error, writeMirror bool, gen uint64) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	current := e.gen == gen
	e.loading = false
	if err != nil {
		e.err = err
		e.loaded = false
	} else {
		e.value = value
		e.err = nil
		e.loaded = true
		if current {
			e.stale = false
		}
		e.fetchedAt = time.Now()
	}
	if e.done != nil {
		close(e.done)
		e.done = nil
	}
	s.mu.Unlock()

	if err == nil && writeMirror && current && s.mirror != nil {
		if data, merr := json.Marshal(value); merr == nil {
			s.mirror.Set(context.Background(), key, data)
		}
	}
}

func (s *Store) abandon(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return
	}
	e.loading = false
	if e.done != nil {
		close(e.done)
		e.done = nil
	}
}
