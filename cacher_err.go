package icacher

// ErrCacher memoizes a single-argument function that can fail.
//
// Only successful results are cached. A failed invocation propagates its
// error unchanged and leaves no entry behind, so the next call with the same
// argument tries again. The same purity precondition as Cacher applies, and
// like Cacher it is not safe for concurrent use.
type ErrCacher[K comparable, V any] struct {
	fn     func(K) (V, error)
	values map[K]V
	obs    *observer
}

// NewErr returns an ErrCacher around fn with an empty result table.
func NewErr[K comparable, V any](fn func(K) (V, error), opts ...Option) *ErrCacher[K, V] {
	cfg := newConfig(opts)
	return &ErrCacher[K, V]{
		fn:     fn,
		values: make(map[K]V, cfg.capacity),
		obs:    cfg.observer(),
	}
}

// WithArg returns the result of fn for arg, computing and storing it first
// if no result is cached yet. A cached result is always returned with a nil
// error; a fresh invocation that fails caches nothing.
func (c *ErrCacher[K, V]) WithArg(arg K) (V, error) {
	if v, ok := c.values[arg]; ok {
		c.obs.hit(arg)
		return v, nil
	}
	c.obs.miss(arg)
	v, err := c.fn(arg)
	if err != nil {
		return v, err
	}
	c.values[arg] = v
	return v, nil
}

// Void primes the cache for arg, discarding the result but not the error.
func (c *ErrCacher[K, V]) Void(arg K) error {
	_, err := c.WithArg(arg)
	return err
}

// IsCached reports whether a result for arg is currently cached.
func (c *ErrCacher[K, V]) IsCached(arg K) bool {
	_, ok := c.values[arg]
	return ok
}

// RemoveCache drops the entry for arg and returns it. The second return
// value is false when nothing was cached for arg.
func (c *ErrCacher[K, V]) RemoveCache(arg K) (V, bool) {
	v, ok := c.values[arg]
	if ok {
		delete(c.values, arg)
	}
	return v, ok
}

// Reset discards every cached result. The wrapped function is untouched.
func (c *ErrCacher[K, V]) Reset() {
	clear(c.values)
}

// To swaps the wrapped function and clears the cache.
func (c *ErrCacher[K, V]) To(fn func(K) (V, error)) {
	c.ToUnchanged(fn)
	c.Reset()
}

// ToUnchanged swaps the wrapped function and keeps the cache as is,
// including entries computed by the old function.
func (c *ErrCacher[K, V]) ToUnchanged(fn func(K) (V, error)) {
	c.fn = fn
}

// CacheIf computes and caches the result for arg only when cond allows it,
// and reports whether a new entry was created. cond is not evaluated for an
// argument that is already cached. A failing invocation reports false along
// with the error, and caches nothing.
func (c *ErrCacher[K, V]) CacheIf(cond func() bool, arg K) (bool, error) {
	if c.IsCached(arg) || !cond() {
		return false, nil
	}
	if err := c.Void(arg); err != nil {
		return false, err
	}
	return true, nil
}

// Len returns the number of cached results.
func (c *ErrCacher[K, V]) Len() int {
	return len(c.values)
}
