package concurrent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nolawnchairs/js-types/funcs"
)

func neverExpires[K any](K, time.Time) bool { return false }

func TestTTLMapExpiry(t *testing.T) {
	m := NewTTLMap[string, int](funcs.Natural[string](), 20*time.Millisecond, 5*time.Millisecond)
	defer m.Close()

	m.Put("a", 1)
	require.Equal(t, 1, m.Get("a").OrElse(-1))

	require.Eventually(t, func() bool {
		return m.Get("a").IsEmpty()
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, m.Len())
}

func TestTTLMapMaxKey(t *testing.T) {
	m := NewTTLMapWithPredicate[int, string](funcs.Natural[int](), neverExpires[int])
	defer m.Close()

	assert.True(t, m.MaxKey().IsEmpty())

	m.Put(1, "a")
	m.Put(5, "b")
	m.Put(3, "c")
	require.Equal(t, 5, m.MaxKey().OrElse(-1))

	m.Delete(5)
	require.Equal(t, 3, m.MaxKey().OrElse(-1))

	m.Delete(3)
	m.Delete(1)
	assert.True(t, m.MaxKey().IsEmpty())
}

func TestTTLMapComputeIfAbsent(t *testing.T) {
	m := NewTTLMapWithPredicate[string, int](funcs.Natural[string](), neverExpires[string])
	defer m.Close()

	assert.Equal(t, 3, m.ComputeIfAbsent("abc", func(k string) int { return len(k) }))
	assert.Equal(t, 3, m.ComputeIfAbsent("abc", func(string) int {
		t.Fatal("supplier called for present key")
		return 0
	}))
	assert.Equal(t, "abc", m.MaxKey().OrElse("?"))
}

func TestTTLMapPredicateExpiry(t *testing.T) {
	// expire by key, ignoring age
	m := NewTTLMapWithPredicate[int, string](funcs.Natural[int](), func(k int, _ time.Time) bool {
		return k < 0
	}, 5*time.Millisecond)
	defer m.Close()

	m.Put(-1, "doomed")
	m.Put(1, "kept")

	require.Eventually(t, func() bool {
		return m.Get(-1).IsEmpty()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "kept", m.Get(1).OrElse("?"))
	assert.Equal(t, 1, m.MaxKey().OrElse(-1))
}
