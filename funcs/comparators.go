package funcs

import (
	"golang.org/x/exp/constraints"
)

// Natural orders by the built-in < and > operators.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then breaks ties with next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if res := c(a, b); res != 0 {
			return res
		}
		return next(a, b)
	}
}

// Equality derives an equality operator from the comparator's tie result.
func (c Comparator[T]) Equality() EqualityOperator[T] {
	return func(a, b T) bool {
		return c(a, b) == 0
	}
}

// EqualityFor compares with the built-in == operator.
func EqualityFor[T comparable]() EqualityOperator[T] {
	return func(a, b T) bool {
		return a == b
	}
}

func Max[T any](a, b T, comparator Comparator[T]) T {
	if comparator(a, b) >= 0 {
		return a
	}
	return b
}

func Min[T any](a, b T, comparator Comparator[T]) T {
	if comparator(a, b) <= 0 {
		return a
	}
	return b
}
