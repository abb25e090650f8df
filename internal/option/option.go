// Package option provides a generic optional value
package option

// Option holds either a value or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns (value, true) if present, otherwise the zero value and false
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Map applies fn to the value if present
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// Bind2 applies fn when both options are present
func Bind2[A, B, U any](a Option[A], b Option[B], fn func(A, B) U) Option[U] {
	if !a.ok || !b.ok {
		return None[U]()
	}
	return Some(fn(a.value, b.value))
}
