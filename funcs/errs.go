package funcs

// Error-returning counterparts of the core shapes. These have no analogue on
// the nullable/async axes; a failed computation reports through the error,
// not through an absent or deferred result.

type ErrRunnable func() error
type ErrSupplier[T any] func() (T, error)
type ErrConsumer[T any] func(T) error
type ErrFunction[T, K any] func(T) (K, error)
type ErrBiFunction[T, K, L any] func(T, K) (L, error)
