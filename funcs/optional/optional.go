package optional

// Optional wraps a value of T that may be absent. The zero value is empty.
//
// Callback parameters are plain func types rather than the named shapes from
// the funcs package: funcs declares its nullable shapes in terms of Optional,
// so this package has to stay a leaf.
type Optional[T any] struct {
	val *T
}

func NewEmpty[T any]() Optional[T] {
	return Optional[T]{}
}

func NewWithValue[T any](val *T) Optional[T] {
	if val == nil {
		return NewEmpty[T]()
	}
	return Optional[T]{val: val}
}

// Of wraps a value by copy, so the caller can pass temporaries.
func Of[T any](val T) Optional[T] {
	return Optional[T]{val: &val}
}

func (o Optional[T]) If(consumer func(T)) {
	if o.val != nil {
		consumer(*o.val)
	}
}

func (o Optional[T]) IfElse(consumer func(T), otherwise func()) {
	if o.val != nil {
		consumer(*o.val)
	} else {
		otherwise()
	}
}

func (o Optional[T]) IsPresent() bool {
	return o.val != nil
}

func (o Optional[T]) IsEmpty() bool {
	return o.val == nil
}

func (o Optional[T]) Get() *T {
	return o.val
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.val != nil {
		return *o.val
	}
	return fallback
}

func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.val != nil {
		return *o.val
	}
	return supplier()
}

func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.val != nil && predicate(*o.val) {
		return o
	}
	return NewEmpty[T]()
}

// Map is a package function because methods cannot introduce type parameters.
func Map[T, K any](o Optional[T], mapper func(T) K) Optional[K] {
	if o.val == nil {
		return NewEmpty[K]()
	}
	return Of(mapper(*o.val))
}

func FlatMap[T, K any](o Optional[T], mapper func(T) Optional[K]) Optional[K] {
	if o.val == nil {
		return NewEmpty[K]()
	}
	return mapper(*o.val)
}
