package rop

// Option holds a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr treats a nil pointer as None.
func FromPtr[T any](p *T) Option[*T] {
	if p == nil {
		return None[*T]()
	}
	return Some(p)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OkOr turns the option into a Result, failing with err when empty.
func OkOr[T any](o Option[T], err error) Result[T] {
	if o.ok {
		return Success(o.value)
	}
	return Fail[T](err)
}
