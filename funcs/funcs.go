package funcs

import (
	"github.com/avast/retry-go/v4"
)

// Identity returns its input unchanged.
func Identity[T any]() UnaryOperator[T] {
	return func(val T) T {
		return val
	}
}

// Chain feeds the output of first into second.
func Chain[T, K, V any](first Function[V, T], second Function[T, K]) Function[V, K] {
	return func(val V) K {
		return second(first(val))
	}
}

// Tee runs every consumer against the same value, in order.
func Tee[T any](consumers ...Consumer[T]) Consumer[T] {
	return func(val T) {
		for _, consumer := range consumers {
			consumer(val)
		}
	}
}

func HandleError(err error) {
	if err != nil {
		panic(err)
	}
}

// Must unwraps a value-and-error pair, panicking on error.
func Must[T any](val T, err error) T {
	HandleError(err)
	return val
}

// Retried adapts an error-returning supplier into a plain Supplier that
// retries per opts and panics once retry-go gives up.
func Retried[T any](supplier ErrSupplier[T], opts ...retry.Option) Supplier[T] {
	return func() T {
		return Must(retry.DoWithData(func() (T, error) {
			return supplier()
		}, opts...))
	}
}

// RetriedCall is Retried for the one-argument shape.
func RetriedCall[T, K any](theFunc ErrFunction[T, K], opts ...retry.Option) Function[T, K] {
	return func(in T) K {
		return Must(retry.DoWithData(func() (K, error) {
			return theFunc(in)
		}, opts...))
	}
}
