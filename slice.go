// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

// SliceIter is a double-ended, exact-size iterator over a slice.
// It consumes the slice by reslicing from either end and never mutates
// the underlying array.
type SliceIter[T any] struct {
	s []T
}

// Slice creates an iterator over the elements of s.
func Slice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s}
}

// Next pulls the first remaining element.
func (it *SliceIter[T]) Next() (T, bool) {
	if len(it.s) == 0 {
		var zero T
		return zero, false
	}
	v := it.s[0]
	it.s = it.s[1:]
	return v, true
}

// Nth skips n elements and pulls the one after them.
func (it *SliceIter[T]) Nth(n uint) (T, bool) {
	if n >= uint(len(it.s)) {
		it.s = nil
		var zero T
		return zero, false
	}
	v := it.s[n]
	it.s = it.s[n+1:]
	return v, true
}

// SizeHint returns the exact remaining length as both bounds.
func (it *SliceIter[T]) SizeHint() (uint, Option[uint]) {
	n := uint(len(it.s))
	return n, Some(n)
}

// Len returns the exact number of remaining elements.
func (it *SliceIter[T]) Len() uint {
	return uint(len(it.s))
}

// NextBack pulls the last remaining element.
func (it *SliceIter[T]) NextBack() (T, bool) {
	if len(it.s) == 0 {
		var zero T
		return zero, false
	}
	v := it.s[len(it.s)-1]
	it.s = it.s[:len(it.s)-1]
	return v, true
}

// NthBack skips n elements from the back and pulls the one before them.
func (it *SliceIter[T]) NthBack(n uint) (T, bool) {
	if n >= uint(len(it.s)) {
		it.s = nil
		var zero T
		return zero, false
	}
	last := uint(len(it.s)) - 1 - n
	v := it.s[last]
	it.s = it.s[:last]
	return v, true
}

// ForEach implements ForEacher with a plain slice loop.
func (it *SliceIter[T]) ForEach(yield func(T) bool) {
	for i, v := range it.s {
		if !yield(v) {
			it.s = it.s[i+1:]
			return
		}
	}
	it.s = nil
}

// ForEachBack implements BackForEacher with a plain slice loop.
func (it *SliceIter[T]) ForEachBack(yield func(T) bool) {
	for i := len(it.s) - 1; i >= 0; i-- {
		if !yield(it.s[i]) {
			it.s = it.s[:i]
			return
		}
	}
	it.s = nil
}
