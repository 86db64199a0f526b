// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

import "iter"

// Iterator is a lazy pull-based sequence of values of type T.
//
// Exhaustion is not an error: a pull past the end returns (zero, false)
// and every subsequent pull does the same.
type Iterator[T any] interface {
	// Next pulls the next element.
	Next() (T, bool)

	// Nth skips n elements and pulls the one after them.
	// Nth(0) is equivalent to Next. The skipped elements are consumed.
	Nth(n uint) (T, bool)

	// SizeHint bounds the number of remaining elements: a lower bound
	// and, when known, an upper bound.
	SizeHint() (uint, Option[uint])
}

// ExactSizeIterator is an Iterator whose exact remaining length is known
// as a single machine word.
type ExactSizeIterator[T any] interface {
	Iterator[T]

	// Len returns the exact number of remaining elements.
	Len() uint
}

// DoubleEndedIterator is an exact-size Iterator that can also be
// consumed from the back. Both ends drain the same sequence: an element
// pulled from one end is never seen by the other.
type DoubleEndedIterator[T any] interface {
	ExactSizeIterator[T]

	// NextBack pulls the last remaining element.
	NextBack() (T, bool)

	// NthBack skips n elements from the back and pulls the one before
	// them. NthBack(0) is equivalent to NextBack.
	NthBack(n uint) (T, bool)
}

// ForEacher is implemented by iterators with an internal forward
// traversal cheaper than repeated Next calls. The consuming operations
// below dispatch through it when available.
type ForEacher[T any] interface {
	// ForEach pulls elements and passes them to yield, in order, until
	// the sequence is exhausted or yield returns false.
	ForEach(yield func(T) bool)
}

// BackForEacher is the reverse counterpart of ForEacher.
type BackForEacher[T any] interface {
	// ForEachBack pulls elements from the back and passes them to
	// yield, in reverse order, until exhaustion or yield returns false.
	ForEachBack(yield func(T) bool)
}

// Fold consumes the iterator, combining every element into an
// accumulator with f.
func Fold[T, A any](it Iterator[T], init A, f func(A, T) A) A {
	acc := init
	if fe, ok := it.(ForEacher[T]); ok {
		fe.ForEach(func(v T) bool {
			acc = f(acc, v)
			return true
		})
		return acc
	}
	for {
		v, ok := it.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// TryFold consumes the iterator like Fold, but stops at the first
// element for which f returns an error. The error is returned verbatim
// together with the accumulator f produced for the failing element; the
// iterator is left positioned just past that element.
func TryFold[T, A any](it Iterator[T], init A, f func(A, T) (A, error)) (A, error) {
	acc := init
	var err error
	if fe, ok := it.(ForEacher[T]); ok {
		fe.ForEach(func(v T) bool {
			acc, err = f(acc, v)
			return err == nil
		})
		return acc, err
	}
	for {
		v, ok := it.Next()
		if !ok {
			return acc, nil
		}
		if acc, err = f(acc, v); err != nil {
			return acc, err
		}
	}
}

// RFold consumes the iterator from the back, combining every element
// into an accumulator with f.
func RFold[T, A any](it DoubleEndedIterator[T], init A, f func(A, T) A) A {
	acc := init
	if fe, ok := it.(BackForEacher[T]); ok {
		fe.ForEachBack(func(v T) bool {
			acc = f(acc, v)
			return true
		})
		return acc
	}
	for {
		v, ok := it.NextBack()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// TryRFold is the reverse counterpart of TryFold.
func TryRFold[T, A any](it DoubleEndedIterator[T], init A, f func(A, T) (A, error)) (A, error) {
	acc := init
	var err error
	if fe, ok := it.(BackForEacher[T]); ok {
		fe.ForEachBack(func(v T) bool {
			acc, err = f(acc, v)
			return err == nil
		})
		return acc, err
	}
	for {
		v, ok := it.NextBack()
		if !ok {
			return acc, nil
		}
		if acc, err = f(acc, v); err != nil {
			return acc, err
		}
	}
}

// Collect drains the iterator into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	if lo, _ := it.SizeHint(); lo > 0 {
		out = make([]T, 0, lo)
	}
	return Fold(it, out, func(s []T, v T) []T { return append(s, v) })
}

// CollectBack drains the iterator from the back into a slice, in
// reverse order.
func CollectBack[T any](it DoubleEndedIterator[T]) []T {
	var out []T
	if lo, _ := it.SizeHint(); lo > 0 {
		out = make([]T, 0, lo)
	}
	return RFold(it, out, func(s []T, v T) []T { return append(s, v) })
}

// Values bridges the pull protocol to a standard push sequence for use
// in range-over-func loops. The iterator is consumed as the sequence is
// ranged over.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if fe, ok := it.(ForEacher[T]); ok {
			fe.ForEach(yield)
			return
		}
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
