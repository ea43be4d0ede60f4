// Package icacher caches the return values of single-argument pure functions.
//
// Running the same function over the same input again and again is wasted
// work when the function always answers the same thing. A Cacher pairs a
// function with a table of its past results: the first call with an argument
// computes, every later call with that argument is a lookup.
//
// A Cacher is more than a map in front of a function. It forces the
// developer to ask:
//
//	→ "Is this function really pure?"
//	→ "May a result computed earlier stand in for a fresh call?"
//
// Those questions are about trust and meaning, not performance. Nothing here
// checks purity at runtime; it is a precondition. Memoizing a function that
// reads the clock, the network, or mutable state turns the cache into a
// source of wrong answers.
//
// Features:
//   - Cacher: the core memoizer, generic over argument and result.
//   - ErrCacher: the fallible sibling; errors propagate and are never cached.
//   - Synced: a mutex-guarded wrapper for sharing across goroutines.
//   - Pair, Triple, Tupled2, Tupled3: explicit tupling for multi-argument
//     functions; a cacher itself only ever sees one argument.
//   - Opt-in zap logging and OpenTelemetry counters via Option values.
//
// Invalidation is always explicit: RemoveCache drops one entry, Reset drops
// them all, To swaps the function and discards everything the old one
// computed, and ToUnchanged swaps the function while deliberately keeping
// the old results. There is no automatic eviction or expiry, and results
// never leave the process.
//
// See cacher_test.go and cacher_bench_test.go for usage and benchmarks.
//
// WARNING: Do not memoize impure functions (e.g. those depending on time,
// I/O, or shared mutable state).
package icacher
