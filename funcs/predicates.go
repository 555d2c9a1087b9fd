package funcs

func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}

func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(val T) bool {
		return p(val) && other(val)
	}
}

func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(val T) bool {
		return p(val) || other(val)
	}
}

func (p Predicate[T]) Negate() Predicate[T] {
	return func(val T) bool {
		return !p(val)
	}
}
