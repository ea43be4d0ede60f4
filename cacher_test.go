package icacher_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/rohankid1/icacher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithArg_ComputesOncePerArgument(t *testing.T) {
	count := 0
	double := icacher.New(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, double.WithArg(2))
	assert.Equal(t, 4, double.WithArg(2)) // cached
	assert.Equal(t, 6, double.WithArg(3))
	assert.Equal(t, 4, double.WithArg(2))
	assert.Equal(t, 2, count)
}

func TestWithArg_TupledArguments(t *testing.T) {
	adder := icacher.New(
		icacher.Tupled2(func(a, b int) int { return a + b }),
		icacher.WithCapacity(1),
	)

	assert.Equal(t, 50, adder.WithArg(icacher.Pair[int, int]{A: 20, B: 30}))
	assert.True(t, adder.IsCached(icacher.Pair[int, int]{A: 20, B: 30}))

	removed, ok := adder.RemoveCache(icacher.Pair[int, int]{A: 20, B: 30})
	assert.True(t, ok)
	assert.Equal(t, 50, removed)
	assert.False(t, adder.IsCached(icacher.Pair[int, int]{A: 20, B: 30}))
}

func TestVoid_PrimesCache(t *testing.T) {
	count := 0
	double := icacher.New(func(i int) int {
		count++
		return i * 2
	})

	double.Void(4)
	assert.True(t, double.IsCached(4))
	assert.Equal(t, 8, double.WithArg(4))
	assert.Equal(t, 1, count)
}

func TestRemoveCache_RoundTrip(t *testing.T) {
	count := 0
	square := icacher.New(func(i int) int {
		count++
		return i * i
	})

	assert.Equal(t, 9, square.WithArg(3))

	removed, ok := square.RemoveCache(3)
	assert.True(t, ok)
	assert.Equal(t, 9, removed)
	assert.False(t, square.IsCached(3))

	assert.Equal(t, 9, square.WithArg(3)) // recomputed
	assert.Equal(t, 2, count)
}

func TestRemoveCache_MissingKey(t *testing.T) {
	double := icacher.New(func(i int) int { return i * 2 })

	v, ok := double.RemoveCache(7)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestReset_ClearsEverything(t *testing.T) {
	square := icacher.New(func(i int) int { return i * i }, icacher.WithCapacity(8))
	for i := 0; i < 5; i++ {
		square.Void(i)
	}
	assert.Equal(t, 5, square.Len())

	square.Reset()

	assert.Equal(t, 0, square.Len())
	for i := 0; i < 5; i++ {
		assert.False(t, square.IsCached(i))
	}
}

func TestToUnchanged_KeepsOldResults(t *testing.T) {
	calls := 0
	c := icacher.New(func(i int) int {
		calls++
		return i + 1
	})
	assert.Equal(t, 2, c.WithArg(1))

	c.ToUnchanged(func(i int) int {
		calls++
		return i * 100
	})

	// stale by choice: the entry computed by the old function survives
	assert.Equal(t, 2, c.WithArg(1))
	assert.Equal(t, 1, calls)

	// fresh arguments go through the new function
	assert.Equal(t, 200, c.WithArg(2))
	assert.Equal(t, 2, calls)
}

func TestTo_DiscardsOldResults(t *testing.T) {
	c := icacher.New(func(i int) int { return i + 1 })
	assert.Equal(t, 2, c.WithArg(1))

	newCalls := 0
	c.To(func(i int) int {
		newCalls++
		return i * 100
	})

	assert.False(t, c.IsCached(1))
	assert.Equal(t, 100, c.WithArg(1))
	assert.Equal(t, 1, newCalls)
}

func TestCacheIf_GatesComputation(t *testing.T) {
	count := 0
	double := icacher.New(func(i int) int {
		count++
		return i * 2
	})

	assert.False(t, double.CacheIf(func() bool { return false }, 5))
	assert.False(t, double.IsCached(5))
	assert.Equal(t, 0, count)

	assert.True(t, double.CacheIf(func() bool { return true }, 5))
	assert.True(t, double.IsCached(5))
	assert.Equal(t, 1, count)
}

func TestCacheIf_CondNotEvaluatedOnHit(t *testing.T) {
	double := icacher.New(func(i int) int { return i * 2 })
	double.Void(5)

	created := double.CacheIf(func() bool {
		panic("cond evaluated for a cached argument")
	}, 5)

	assert.False(t, created)
}

func TestWithArg_DecimalResults(t *testing.T) {
	count := 0
	price := icacher.New(func(cents int64) decimal.Decimal {
		count++
		d, err := decimal.New(cents, 2)
		require.NoError(t, err)
		return d
	})

	assert.Equal(t, "12.50", price.WithArg(1250).String())
	assert.Equal(t, "12.50", price.WithArg(1250).String())
	assert.Equal(t, 1, count)
}

func TestTupled3(t *testing.T) {
	count := 0
	volume := icacher.New(icacher.Tupled3(func(a, b, c int) int {
		count++
		return a * b * c
	}))

	assert.Equal(t, 24, volume.WithArg(icacher.Triple[int, int, int]{A: 2, B: 3, C: 4}))
	assert.Equal(t, 24, volume.WithArg(icacher.Triple[int, int, int]{A: 2, B: 3, C: 4}))
	assert.Equal(t, 1, count)
}
