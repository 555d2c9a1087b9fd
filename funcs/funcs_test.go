package funcs

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	id := Identity[string]()
	assert.Equal(t, "same", id("same"))
}

func TestChain(t *testing.T) {
	parse := Function[string, int](func(s string) int { return Must(strconv.Atoi(s)) })
	double := Function[int, int](func(v int) int { return v * 2 })

	chained := Chain(parse, double)
	assert.Equal(t, 84, chained("42"))
}

func TestTee(t *testing.T) {
	var a, b int
	Tee[int](func(v int) { a = v }, func(v int) { b = v * 10 })(3)
	assert.Equal(t, 3, a)
	assert.Equal(t, 30, b)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 5, Must(5, nil))
	require.Panics(t, func() {
		Must(0, errors.New("nope"))
	})
}

func TestRetried(t *testing.T) {
	t.Run("recovers after transient failures", func(t *testing.T) {
		attempts := 0
		supplier := Retried(func() (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("not yet")
			}
			return 42, nil
		}, retry.Attempts(5), retry.Delay(time.Millisecond), retry.LastErrorOnly(true))

		require.Equal(t, 42, supplier())
		require.Equal(t, 3, attempts)
	})

	t.Run("panics once attempts are exhausted", func(t *testing.T) {
		supplier := Retried(func() (int, error) {
			return 0, errors.New("always")
		}, retry.Attempts(2), retry.Delay(time.Millisecond), retry.LastErrorOnly(true))

		require.Panics(t, func() { supplier() })
	})
}

func TestRetriedCall(t *testing.T) {
	attempts := 0
	parse := RetriedCall(func(s string) (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errors.New("flaky")
		}
		return strconv.Atoi(s)
	}, retry.Attempts(3), retry.Delay(time.Millisecond), retry.LastErrorOnly(true))

	require.Equal(t, 7, parse("7"))
	require.Equal(t, 2, attempts)
}
