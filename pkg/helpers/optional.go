package helpers

// Optional is a handle that may be empty. Lookups that can legitimately miss
// (a page, a panel, a chart container) return an Optional so every caller
// decides explicitly what a missing handle means.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) Present() bool {
	return o.ok
}

// IfPresent calls fn with the value when there is one.
func (o Optional[T]) IfPresent(fn func(T)) bool {
	if o.ok {
		fn(o.value)
	}
	return o.ok
}

// OrElse returns the value or fallback when empty.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
