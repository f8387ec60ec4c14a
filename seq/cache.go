// SPDX-License-Identifier: MIT
// Package: liveseq/seq
//
// cache.go — memoizing view with caller-supplied invalidation.
//
// Contract (strict):
//   • Entries are keyed by index and hold (value, creation time).
//   • An entry is authoritative until the invalidator rejects it on a read
//     or a write through this view replaces it. There is no implicit expiry
//     and no eviction: memory grows with the number of distinct indices
//     read, and bounding it is the caller's job (see MaxAge, MaxEntries).
//   • Writes go to the parent first, then refresh the entry without
//     consulting the invalidator.
//   • Len is never cached.

package seq

import (
	"time"

	"github.com/rs/zerolog"
)

// CacheInfo describes a cached entry at the moment it is re-read.
type CacheInfo[T any] struct {
	Value      T             // cached value
	Index      int           // index the entry is stored under
	CacheCount int           // number of entries currently held, this one included
	Age        time.Duration // time since the entry was stored
}

// AgeMs is Age in whole milliseconds.
func (c CacheInfo[T]) AgeMs() int64 { return c.Age.Milliseconds() }

// Invalidator decides whether a cached entry must be recomputed.
type Invalidator[T any] func(info CacheInfo[T]) bool

// CacheObserver receives cache events. Implementations must not touch the view.
type CacheObserver interface {
	CacheHit(index int)
	CacheMiss(index int)
	CacheInvalidated(index int)
	CacheWrite(index int)
}

type noopObserver struct{}

func (noopObserver) CacheHit(int)         {}
func (noopObserver) CacheMiss(int)        {}
func (noopObserver) CacheInvalidated(int) {}
func (noopObserver) CacheWrite(int)       {}

type cacheConfig[T any] struct {
	invalidate Invalidator[T]
	now        func() time.Time
	logger     zerolog.Logger
	observer   CacheObserver
}

// CacheOption customizes a cache view. Constructors panic on nil input.
type CacheOption[T any] func(*cacheConfig[T])

// WithInvalidator installs the invalidation predicate.
func WithInvalidator[T any](fn Invalidator[T]) CacheOption[T] {
	if fn == nil {
		panic("seq: WithInvalidator(nil)")
	}
	return func(c *cacheConfig[T]) { c.invalidate = fn }
}

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock[T any](now func() time.Time) CacheOption[T] {
	if now == nil {
		panic("seq: WithClock(nil)")
	}
	return func(c *cacheConfig[T]) { c.now = now }
}

// WithCacheLogger enables debug events for misses and invalidations.
func WithCacheLogger[T any](logger zerolog.Logger) CacheOption[T] {
	return func(c *cacheConfig[T]) { c.logger = logger }
}

// WithObserver attaches a CacheObserver, e.g. a seqmetrics.CacheCollector.
func WithObserver[T any](o CacheObserver) CacheOption[T] {
	if o == nil {
		panic("seq: WithObserver(nil)")
	}
	return func(c *cacheConfig[T]) { c.observer = o }
}

// MaxAge invalidates entries older than d.
func MaxAge[T any](d time.Duration) Invalidator[T] {
	if d < 0 {
		panic("seq: MaxAge with negative duration")
	}
	return func(info CacheInfo[T]) bool { return info.Age > d }
}

// MaxEntries invalidates any entry read while the cache holds more than n
// entries. The entry is recomputed, so the count stays where it was.
func MaxEntries[T any](n int) Invalidator[T] {
	if n < 0 {
		panic("seq: MaxEntries with negative count")
	}
	return func(info CacheInfo[T]) bool { return info.CacheCount > n }
}

// AnyOf invalidates when at least one of fns does. Evaluation stops at the
// first true.
func AnyOf[T any](fns ...Invalidator[T]) Invalidator[T] {
	return func(info CacheInfo[T]) bool {
		for _, fn := range fns {
			if fn(info) {
				return true
			}
		}
		return false
	}
}

type cacheEntry[T any] struct {
	value   T
	created time.Time
}

type cacheView[T any] struct {
	parent  View[T]
	entries map[int]cacheEntry[T]
	cfg     cacheConfig[T]
}

func (c *cacheView[T]) Len() int { return c.parent.Len() }

func (c *cacheView[T]) Get(i int) (T, error) {
	e, ok := c.entries[i]
	if ok && c.cfg.invalidate != nil {
		info := CacheInfo[T]{
			Value:      e.value,
			Index:      i,
			CacheCount: len(c.entries),
			Age:        c.cfg.now().Sub(e.created),
		}
		if c.cfg.invalidate(info) {
			delete(c.entries, i)
			ok = false
			c.cfg.observer.CacheInvalidated(i)
			c.cfg.logger.Debug().Int("index", i).Dur("age", info.Age).Msg("cache entry invalidated")
		}
	}
	if ok {
		c.cfg.observer.CacheHit(i)
		return e.value, nil
	}

	v, err := c.parent.Get(i)
	if err != nil {
		var zero T
		return zero, err
	}
	c.entries[i] = cacheEntry[T]{value: v, created: c.cfg.now()}
	c.cfg.observer.CacheMiss(i)
	c.cfg.logger.Debug().Int("index", i).Int("entries", len(c.entries)).Msg("cache miss")
	return v, nil
}

func (c *cacheView[T]) Set(i int, v T) error {
	if err := c.parent.Set(i, v); err != nil {
		return err
	}
	c.entries[i] = cacheEntry[T]{value: v, created: c.cfg.now()}
	c.cfg.observer.CacheWrite(i)
	return nil
}

// WithCache returns a view memoizing reads of s per index.
//
// Without WithInvalidator entries live as long as the view does.
func (s *Seq[T]) WithCache(opts ...CacheOption[T]) *Seq[T] {
	cfg := cacheConfig[T]{
		now:      time.Now,
		logger:   zerolog.Nop(),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Seq[T]{v: &cacheView[T]{
		parent:  s.v,
		entries: make(map[int]cacheEntry[T]),
		cfg:     cfg,
	}}
}
