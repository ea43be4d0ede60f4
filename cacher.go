package icacher

// Cacher memoizes a single-argument function.
//
// The wrapped function must be pure: deterministic and free of side effects.
// A cached result stands in for a real call, which is only sound when the
// function would have produced the same value again. Purity is a
// precondition of every operation here, not something the cacher can check.
//
// A Cacher is not safe for concurrent use. Share one across goroutines via
// Synced, or serialize access externally.
type Cacher[K comparable, V any] struct {
	fn     func(K) V
	values map[K]V
	obs    *observer
}

// New returns a Cacher around fn with an empty result table.
// WithCapacity pre-sizes the table; the other options attach
// instrumentation.
func New[K comparable, V any](fn func(K) V, opts ...Option) *Cacher[K, V] {
	cfg := newConfig(opts)
	return &Cacher[K, V]{
		fn:     fn,
		values: make(map[K]V, cfg.capacity),
		obs:    cfg.observer(),
	}
}

// WithArg returns the result of fn for arg, computing and storing it first
// if no result is cached yet. Between invalidations, fn runs at most once
// per distinct argument.
func (c *Cacher[K, V]) WithArg(arg K) V {
	if v, ok := c.values[arg]; ok {
		c.obs.hit(arg)
		return v
	}
	c.obs.miss(arg)
	v := c.fn(arg)
	c.values[arg] = v
	return v
}

// Void primes the cache for arg, discarding the result.
func (c *Cacher[K, V]) Void(arg K) {
	c.WithArg(arg)
}

// IsCached reports whether a result for arg is currently cached.
func (c *Cacher[K, V]) IsCached(arg K) bool {
	_, ok := c.values[arg]
	return ok
}

// RemoveCache drops the entry for arg and returns it. The second return
// value is false when nothing was cached for arg; that is a normal outcome,
// not a failure. A later WithArg for arg recomputes.
func (c *Cacher[K, V]) RemoveCache(arg K) (V, bool) {
	v, ok := c.values[arg]
	if ok {
		delete(c.values, arg)
	}
	return v, ok
}

// Reset discards every cached result. The wrapped function is untouched.
func (c *Cacher[K, V]) Reset() {
	clear(c.values)
}

// To swaps the wrapped function and clears the cache, so no result computed
// by the old function can ever be served for the new one. This is the safe
// replacement; ToUnchanged is the one that keeps old results.
func (c *Cacher[K, V]) To(fn func(K) V) {
	c.ToUnchanged(fn)
	c.Reset()
}

// ToUnchanged swaps the wrapped function and keeps the cache as is. Entries
// computed by the old function remain and are served on a hit. Callers opt
// into that staleness deliberately, e.g. when the new function agrees with
// the old one on every already-cached input.
func (c *Cacher[K, V]) ToUnchanged(fn func(K) V) {
	c.fn = fn
}

// CacheIf computes and caches the result for arg only when cond allows it,
// and reports whether a new entry was created. An argument that is already
// cached is never recomputed or overwritten, and cond is not evaluated for
// it; cond runs only when a miss would otherwise occur.
func (c *Cacher[K, V]) CacheIf(cond func() bool, arg K) bool {
	if c.IsCached(arg) || !cond() {
		return false
	}
	c.Void(arg)
	return true
}

// Len returns the number of cached results.
func (c *Cacher[K, V]) Len() int {
	return len(c.values)
}
