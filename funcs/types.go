package funcs

// Void is the unit type for shapes that produce no meaningful value, such as
// async consumers whose deferred result carries only completion.
type Void = struct{}

type Runnable func()
type Supplier[T any] func() T
type Consumer[T any] func(T)
type BiConsumer[T, K any] func(T, K)
type Function[T, K any] func(T) K
type BiFunction[T, K, L any] func(T, K) L

// Specializations below are declared in terms of Function/BiFunction so they
// stay convertible with the general shapes in both directions.

type Predicate[T any] Function[T, bool]
type BiPredicate[T, K any] BiFunction[T, K, bool]

// Operators constrain the result type to equal the operand type(s).
type UnaryOperator[T any] Function[T, T]
type BinaryOperator[T any] BiFunction[T, T, T]

// Comparator returns a signed ordering indicator: negative when the first
// operand sorts before the second, zero when they tie, positive otherwise.
type Comparator[T any] BiFunction[T, T, int]
type EqualityOperator[T any] BiFunction[T, T, bool]

type Reducer[T any] BiFunction[*T, *T, *T]
