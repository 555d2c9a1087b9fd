package funcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateCombinators(t *testing.T) {
	even := Predicate[int](func(v int) bool { return v%2 == 0 })
	positive := Predicate[int](func(v int) bool { return v > 0 })

	assert.True(t, even.And(positive)(4))
	assert.False(t, even.And(positive)(-4))
	assert.True(t, even.Or(positive)(3))
	assert.False(t, even.Or(positive)(-3))
	assert.True(t, even.Negate()(3))
	assert.True(t, Always[int]()(-1))
	assert.False(t, Never[int]()(-1))
}
