package icacher

import "sync"

// Synced is a mutex-guarded Cacher for sharing across goroutines. Every
// operation holds the lock for its full duration, including the call into
// the wrapped function on a miss, so concurrent callers with the same
// argument still observe at-most-once invocation.
//
// The core Cacher stays unsynchronized; Synced is the opt-in.
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	inner *Cacher[K, V]
}

// NewSynced returns a Synced cacher around fn.
func NewSynced[K comparable, V any](fn func(K) V, opts ...Option) *Synced[K, V] {
	return &Synced[K, V]{inner: New(fn, opts...)}
}

// WithArg returns the result of fn for arg, computing and storing it first
// if no result is cached yet.
func (s *Synced[K, V]) WithArg(arg K) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.WithArg(arg)
}

// Void primes the cache for arg, discarding the result.
func (s *Synced[K, V]) Void(arg K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Void(arg)
}

// IsCached reports whether a result for arg is currently cached.
func (s *Synced[K, V]) IsCached(arg K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsCached(arg)
}

// RemoveCache drops the entry for arg and returns it.
func (s *Synced[K, V]) RemoveCache(arg K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.RemoveCache(arg)
}

// Reset discards every cached result.
func (s *Synced[K, V]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Reset()
}

// To swaps the wrapped function and clears the cache.
func (s *Synced[K, V]) To(fn func(K) V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.To(fn)
}

// ToUnchanged swaps the wrapped function and keeps the cache as is.
func (s *Synced[K, V]) ToUnchanged(fn func(K) V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.ToUnchanged(fn)
}

// CacheIf computes and caches the result for arg only when cond allows it.
// cond runs with the lock held and must not call back into the same Synced.
func (s *Synced[K, V]) CacheIf(cond func() bool, arg K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CacheIf(cond, arg)
}

// Len returns the number of cached results.
func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}
