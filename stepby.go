// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

// strider is implemented by inner sequences that have a constant-time
// strided representation. setupStride reshapes the sequence at
// construction time; the remaining hooks then replace the generic
// Nth-based schedule for every operation. step is always the stride
// minus one.
type strider[T any] interface {
	setupStride(stride uint) bool
	strideNext(step uint) (T, bool)
	strideNextBack(step uint) (T, bool)
	strideRemaining() uint
	strideAdvance(n, step uint) uint
	strideAdvanceBack(n uint) uint
}

// StepBy is an iterator adapter that yields every n-th element of an
// inner sequence: the elements at indices 0, n, 2n, … of the inner, in
// order. It is created by [New].
//
// Reverse operations (NextBack, NthBack, ForEachBack) are available when
// the inner implements [DoubleEndedIterator]; calling them on any other
// inner panics. Both directions consume the same abstract sequence: an
// element pulled from one end is never yielded by the other.
type StepBy[T any] struct {
	iter Iterator[T]
	back DoubleEndedIterator[T] // non-nil iff iter is double-ended
	spec strider[T]             // non-nil iff the specialized path was selected

	// step is the stride minus one, so step+1 never overflows the word.
	step      uint
	firstTake bool
}

// New wraps inner with a stride of n: the adapter yields the inner's
// 0th, n-th, 2n-th, … elements. Panics if n is zero.
//
// When inner is a [Range] whose element width fits the machine word,
// construction selects a specialized path that advances by a single add
// per pull instead of an Nth dispatch. The two paths yield identical
// sequences; New takes ownership of inner either way.
func New[T any](inner Iterator[T], n uint) *StepBy[T] {
	if n == 0 {
		panic("stride: step must be positive")
	}
	s := &StepBy[T]{iter: inner, step: n - 1, firstTake: true}
	if sp, ok := inner.(strider[T]); ok && sp.setupStride(n) {
		s.spec = sp
	}
	s.back, _ = inner.(DoubleEndedIterator[T])
	return s
}

// Next pulls the next element.
func (s *StepBy[T]) Next() (T, bool) {
	if s.spec != nil {
		return s.spec.strideNext(s.step)
	}
	skip := s.step
	if s.firstTake {
		skip = 0
	}
	s.firstTake = false
	return s.iter.Nth(skip)
}

// SizeHint bounds the number of remaining elements. The bounds are
// exact whenever the inner's are.
func (s *StepBy[T]) SizeHint() (uint, Option[uint]) {
	if s.spec != nil {
		n := s.spec.strideRemaining()
		return n, Some(n)
	}
	lo, hi := s.iter.SizeHint()
	if upper, present := hi.Get(); present {
		return s.outputLen(lo), Some(s.outputLen(upper))
	}
	return s.outputLen(lo), None[uint]()
}

// outputLen maps a remaining inner count to a remaining output count.
func (s *StepBy[T]) outputLen(n uint) uint {
	if s.firstTake {
		if n == 0 {
			return 0
		}
		return 1 + (n-1)/(s.step+1)
	}
	return n / (s.step + 1)
}

// Len returns the exact number of remaining elements. Panics unless the
// adapter is specialized or the inner is an [ExactSizeIterator].
func (s *StepBy[T]) Len() uint {
	if s.spec != nil {
		return s.spec.strideRemaining()
	}
	ex, ok := s.iter.(ExactSizeIterator[T])
	if !ok {
		panic("stride: Len requires an exact-size inner iterator")
	}
	return s.outputLen(ex.Len())
}

// Nth skips n elements of the adapter's output and pulls the one after
// them. The index arithmetic never overflows the machine word: when the
// inner skip count would, the inner is drained in segments whose skip
// counts all fit.
func (s *StepBy[T]) Nth(n uint) (T, bool) {
	if s.spec != nil {
		if s.spec.strideAdvance(n, s.step) < n {
			var zero T
			return zero, false
		}
		return s.spec.strideNext(s.step)
	}
	if s.firstTake {
		s.firstTake = false
		first, ok := s.iter.Next()
		if n == 0 {
			return first, ok
		}
		n--
	}
	// n and step are indices; converting either to an element count
	// needs a +1, and the count product can overflow the word.
	step := s.step + 1
	if n == wordMax {
		// n+1 would overflow: pre-skip one stride and treat n as
		// already incremented.
		s.iter.Nth(step - 1)
	} else {
		n++
	}
	for {
		if mul, ok := checkedMul(n, step); ok {
			return s.iter.Nth(mul - 1)
		}
		// Overflowed: peel off the largest sub-schedule whose element
		// count fits the word, then retry with the remainder. Each pass
		// strictly reduces n or step, so the loop terminates.
		divN := wordMax / n
		divStep := wordMax / step
		nthN := divN * n
		nthStep := divStep * step
		var nth uint
		if nthN > nthStep {
			step -= divN
			nth = nthN
		} else {
			n -= divStep
			nth = nthStep
		}
		s.iter.Nth(nth - 1)
	}
}

// ForEach implements ForEacher: after the first-take pull, the forward
// traversal is one inner Nth per element.
func (s *StepBy[T]) ForEach(yield func(T) bool) {
	if s.spec != nil {
		for {
			v, ok := s.spec.strideNext(s.step)
			if !ok || !yield(v) {
				return
			}
		}
	}
	if s.firstTake {
		s.firstTake = false
		v, ok := s.iter.Next()
		if !ok || !yield(v) {
			return
		}
	}
	for {
		v, ok := s.iter.Nth(s.step)
		if !ok || !yield(v) {
			return
		}
	}
}

// nextBackIndex is the zero-based index, measured from the back of the
// inner, of the last element the adapter has yet to yield.
func (s *StepBy[T]) nextBackIndex() uint {
	rem := s.back.Len() % (s.step + 1)
	if s.firstTake {
		if rem == 0 {
			return s.step
		}
		return rem - 1
	}
	return rem
}

func (s *StepBy[T]) mustBack(op string) DoubleEndedIterator[T] {
	if s.back == nil {
		panic("stride: " + op + " requires a double-ended inner iterator")
	}
	return s.back
}

// NextBack pulls the last remaining element of the adapter's output.
func (s *StepBy[T]) NextBack() (T, bool) {
	if s.spec != nil {
		return s.spec.strideNextBack(s.step)
	}
	return s.mustBack("NextBack").NthBack(s.nextBackIndex())
}

// NthBack skips n elements of the adapter's output from the back and
// pulls the one before them.
func (s *StepBy[T]) NthBack(n uint) (T, bool) {
	if s.spec != nil {
		if s.spec.strideAdvanceBack(n) < n {
			var zero T
			return zero, false
		}
		return s.spec.strideNextBack(s.step)
	}
	back := s.mustBack("NthBack")
	// Saturation is safe: the inner length cannot exceed the word, so a
	// clamped index is out of bounds either way and drains the inner.
	return back.NthBack(saturatingAdd(saturatingMul(n, s.step+1), s.nextBackIndex()))
}

// ForEachBack implements BackForEacher: after the positioning pull via
// NextBack, the reverse traversal is one inner NthBack per element.
func (s *StepBy[T]) ForEachBack(yield func(T) bool) {
	if s.spec != nil {
		for {
			v, ok := s.spec.strideNextBack(s.step)
			if !ok || !yield(v) {
				return
			}
		}
	}
	back := s.mustBack("ForEachBack")
	v, ok := s.NextBack()
	if !ok || !yield(v) {
		return
	}
	for {
		v, ok := back.NthBack(s.step)
		if !ok || !yield(v) {
			return
		}
	}
}
