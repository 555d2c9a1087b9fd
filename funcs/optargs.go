package funcs

import (
	"github.com/nolawnchairs/js-types/funcs/future"
	"github.com/nolawnchairs/js-types/funcs/optional"
)

// WithOptionalArg variants make the trailing parameter omittable at the call
// site via a variadic. An implementation reads at most the first element;
// the binary forms keep the first operand required, since only a trailing
// parameter can be optional.

type ConsumerWithOptionalArg[T any] func(...T)
type FunctionWithOptionalArg[T, K any] func(...T) K
type PredicateWithOptionalArg[T any] FunctionWithOptionalArg[T, bool]
type UnaryOperatorWithOptionalArg[T any] FunctionWithOptionalArg[T, T]

type BiConsumerWithOptionalArg[T, K any] func(T, ...K)
type BiFunctionWithOptionalArg[T, K, L any] func(T, ...K) L
type BiPredicateWithOptionalArg[T, K any] BiFunctionWithOptionalArg[T, K, bool]
type BinaryOperatorWithOptionalArg[T any] BiFunctionWithOptionalArg[T, T, T]

// Nullable and async crossings for the unary family.

type NullableFunctionWithOptionalArg[T, K any] FunctionWithOptionalArg[T, optional.Optional[K]]
type AsyncFunctionWithOptionalArg[T, K any] FunctionWithOptionalArg[T, *future.Future[K]]
type AsyncConsumerWithOptionalArg[T any] FunctionWithOptionalArg[T, *future.Future[Void]]
