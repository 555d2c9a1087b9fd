package funcs

import (
	"github.com/nolawnchairs/js-types/funcs/future"
	"github.com/nolawnchairs/js-types/funcs/optional"
)

// Async variants deliver the result through a Future instead of returning it
// directly. The shapes say nothing about scheduling; whatever concurrency the
// implementation uses lives behind the Future it hands back.

type AsyncRunnable Supplier[*future.Future[Void]]
type AsyncSupplier[T any] Supplier[*future.Future[T]]
type AsyncConsumer[T any] Function[T, *future.Future[Void]]
type AsyncBiConsumer[T, K any] BiFunction[T, K, *future.Future[Void]]
type AsyncFunction[T, K any] Function[T, *future.Future[K]]
type AsyncBiFunction[T, K, L any] BiFunction[T, K, *future.Future[L]]
type AsyncPredicate[T any] Function[T, *future.Future[bool]]
type AsyncBiPredicate[T, K any] BiFunction[T, K, *future.Future[bool]]
type AsyncUnaryOperator[T any] Function[T, *future.Future[T]]
type AsyncBinaryOperator[T any] BiFunction[T, T, *future.Future[T]]

// Cross points of the async and nullable axes: a deferred result that may
// resolve to absence.

type AsyncNullableSupplier[T any] Supplier[*future.Future[optional.Optional[T]]]
type AsyncNullableFunction[T, K any] Function[T, *future.Future[optional.Optional[K]]]
type AsyncNullableBiFunction[T, K, L any] BiFunction[T, K, *future.Future[optional.Optional[L]]]
type AsyncNullableUnaryOperator[T any] Function[T, *future.Future[optional.Optional[T]]]
type AsyncNullableBinaryOperator[T any] BiFunction[T, T, *future.Future[optional.Optional[T]]]
