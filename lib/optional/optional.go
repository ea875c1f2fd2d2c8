// Package optional provides a minimal Some/None sum type used as the return
// type of fallible lookups throughout this library (map lookups, queue and
// stack removal). An absent key or an empty buffer is a normal outcome here,
// not an error, so the API surfaces it as a value instead of an error return.
package optional

// Value holds either a value of type T ("some") or nothing ("none").
// The zero value of Value is none.
type Value[T any] struct {
	value T
	ok    bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSome reports whether the Value holds a value.
func (o Value[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Value is empty.
func (o Value[T]) IsNone() bool { return !o.ok }

// Unwrap returns the held value and whether it is present. If the Value is
// none, the first return is the zero value of T.
func (o Value[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or fallback if the Value is none.
func (o Value[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Map applies fn to the held value, propagating none.
func Map[T, U any](o Value[T], fn func(T) U) Value[U] {
	if v, ok := o.Unwrap(); ok {
		return Some(fn(v))
	}
	return None[U]()
}
