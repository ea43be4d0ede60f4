package icacher

// A cacher memoizes functions of exactly one argument. Functions of more
// arguments are memoized by tupling those arguments explicitly: the tuple is
// both the cache key and the value handed to the function, so every field
// must itself be comparable.

// Pair is a comparable two-field key.
type Pair[A, B comparable] struct {
	A A
	B B
}

// Triple is a comparable three-field key.
type Triple[A, B, C comparable] struct {
	A A
	B B
	C C
}

// Tupled2 adapts a two-argument function to the single Pair argument a
// cacher expects, as in New(Tupled2(add)).
func Tupled2[A, B comparable, V any](fn func(A, B) V) func(Pair[A, B]) V {
	return func(p Pair[A, B]) V {
		return fn(p.A, p.B)
	}
}

// Tupled3 adapts a three-argument function to a single Triple argument.
func Tupled3[A, B, C comparable, V any](fn func(A, B, C) V) func(Triple[A, B, C]) V {
	return func(t Triple[A, B, C]) V {
		return fn(t.A, t.B, t.C)
	}
}
