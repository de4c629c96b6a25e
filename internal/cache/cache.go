package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is used when Options.TTL is not set.
const DefaultTTL = 5 * time.Minute

// ErrNoValue is returned when a population failed and there is no previous
// value to fall back on.
var ErrNoValue = errors.New("cache: no value available")

// PopulateFunc computes the authoritative value for key. It is responsible
// for its own timeouts and retries.
type PopulateFunc[V any] func(ctx context.Context, key string) (V, error)

// Options configures a Cache.
type Options[V any] struct {
	// Name identifies the cache in observer callbacks.
	Name string

	// TTL is the freshness window. Zero means DefaultTTL.
	TTL time.Duration

	// Default builds the value returned when nothing has ever been cached
	// and a population fails. Nil means the zero value of V.
	Default func() V

	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time

	// Observer receives cache events. Nil means no-op.
	Observer Observer
}

type entry[V any] struct {
	value      V
	computedAt time.Time
}

// Cache is a single-flight TTL cache. It is safe for concurrent use.
type Cache[V any] struct {
	name     string
	ttl      time.Duration
	def      func() V
	now      func() time.Time
	observer Observer

	mu      sync.RWMutex
	entries map[string]entry[V]

	group singleflight.Group
}

// New creates an empty cache.
func New[V any](opts Options[V]) *Cache[V] {
	c := &Cache[V]{
		name:     opts.Name,
		ttl:      opts.TTL,
		def:      opts.Default,
		now:      opts.Clock,
		observer: opts.Observer,
		entries:  make(map[string]entry[V]),
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.observer == nil {
		c.observer = NopObserver()
	}
	return c
}

// Name returns the configured cache name.
func (c *Cache[V]) Name() string { return c.name }

// TTL returns the freshness window.
func (c *Cache[V]) TTL() time.Duration { return c.ttl }

// Get returns the value for key, running populate when the cached value is
// missing or stale. Concurrent callers for the same key share one population.
//
// The population runs detached from ctx cancellation so that an aborted
// request does not fail the other waiters. If ctx is done before the
// population completes, Get stops waiting and behaves as if the population
// had failed with ctx.Err().
//
// A non-nil error is returned only when there is no value at all to serve; in
// that case the returned value is the configured default.
func (c *Cache[V]) Get(ctx context.Context, key string, populate PopulateFunc[V]) (V, error) {
	if v, ok := c.fresh(key); ok {
		c.observer.Hit(c.name)
		return v, nil
	}
	c.observer.Miss(c.name)

	ch := c.group.DoChan(key, func() (any, error) {
		// A flight that finished between our freshness check and DoChan
		// already stored a value.
		if v, ok := c.fresh(key); ok {
			return v, nil
		}
		return c.populate(context.WithoutCancel(ctx), key, populate)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return c.fallback(key, res.Err)
		}
		v, _ := res.Val.(V)
		return v, nil
	case <-ctx.Done():
		return c.fallback(key, ctx.Err())
	}
}

// Peek returns the cached value for key regardless of age, without
// triggering a population.
func (c *Cache[V]) Peek(key string) (value V, computedAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return value, time.Time{}, false
	}
	return e.value, e.computedAt, true
}

// Invalidate drops the entry for key. An in-flight population is not
// affected and will store its result when it completes.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Reset drops every entry.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len returns the number of cached keys, fresh or stale.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) fresh(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.computedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) populate(ctx context.Context, key string, populate PopulateFunc[V]) (out any, err error) {
	start := c.now()
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("cache %s: populate panicked: %v", c.name, r)
		}
		c.observer.Populated(c.name, c.now().Sub(start), err)
	}()

	v, err := populate(ctx, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, computedAt: c.now()}
	c.mu.Unlock()

	return v, nil
}

func (c *Cache[V]) fallback(key string, cause error) (V, error) {
	if v, _, ok := c.Peek(key); ok {
		c.observer.ServedStale(c.name)
		return v, nil
	}

	var v V
	if c.def != nil {
		v = c.def()
	}
	return v, fmt.Errorf("%w: %w", ErrNoValue, cause)
}
