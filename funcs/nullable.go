package funcs

import (
	"github.com/nolawnchairs/js-types/funcs/optional"
)

// Nullable variants widen the result to optional.Optional, so an
// implementation can report absence without resorting to pointers or
// sentinel values.

type NullableSupplier[T any] Supplier[optional.Optional[T]]
type NullableFunction[T, K any] Function[T, optional.Optional[K]]
type NullableBiFunction[T, K, L any] BiFunction[T, K, optional.Optional[L]]
type NullablePredicate[T any] Function[T, optional.Optional[bool]]
type NullableBiPredicate[T, K any] BiFunction[T, K, optional.Optional[bool]]
type NullableUnaryOperator[T any] Function[T, optional.Optional[T]]
type NullableBinaryOperator[T any] BiFunction[T, T, optional.Optional[T]]
