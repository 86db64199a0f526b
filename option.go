// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

// Option represents a value that may be absent.
// It carries the upper bound of a size hint, where "unknown" is a payload
// to propagate rather than an end-of-sequence signal.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOr returns the value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}
