// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

// Unsigned is the constraint for half-open range element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range is a double-ended, exact-size iterator over the half-open
// interval [start, end). A range with end <= start is empty.
//
// A Range handed to [New] is owned by the adapter from then on: the
// constructor may reshape its internal state for the specialized
// stepping path, after which direct pulls on the range are meaningless.
type Range[E Unsigned] struct {
	start E
	end   E
}

// NewRange creates an iterator over [start, end).
func NewRange[E Unsigned](start, end E) *Range[E] {
	return &Range[E]{start: start, end: end}
}

// wideLen returns the remaining length without clamping.
func (r *Range[E]) wideLen() uint64 {
	if r.end <= r.start {
		return 0
	}
	return uint64(r.end - r.start)
}

// Next pulls the next value.
func (r *Range[E]) Next() (E, bool) {
	if r.start >= r.end {
		return 0, false
	}
	v := r.start
	r.start++
	return v, true
}

// Nth skips n values and pulls the one after them.
func (r *Range[E]) Nth(n uint) (E, bool) {
	if uint64(n) >= r.wideLen() {
		r.start = r.end
		return 0, false
	}
	r.start += E(n)
	return r.Next()
}

// SizeHint returns the exact remaining length as both bounds.
func (r *Range[E]) SizeHint() (uint, Option[uint]) {
	n := r.Len()
	return n, Some(n)
}

// Len returns the exact number of remaining values, saturated to the
// machine word for element types wider than it.
func (r *Range[E]) Len() uint {
	if l := r.wideLen(); l <= uint64(wordMax) {
		return uint(l)
	}
	return wordMax
}

// NextBack pulls the last remaining value.
func (r *Range[E]) NextBack() (E, bool) {
	if r.start >= r.end {
		return 0, false
	}
	r.end--
	return r.end, true
}

// NthBack skips n values from the back and pulls the one before them.
func (r *Range[E]) NthBack(n uint) (E, bool) {
	if uint64(n) >= r.wideLen() {
		r.end = r.start
		return 0, false
	}
	r.end -= E(n)
	return r.NextBack()
}

// Stride specialization hooks, used by StepBy when the element width
// fits the machine word. After setupStride, end holds the number of
// values left to yield rather than an upper bound, and start holds the
// next value to yield.

// setupStride reshapes the range for strided iteration and reports
// whether the specialization applies.
func (r *Range[E]) setupStride(stride uint) bool {
	if uint64(^E(0)) > uint64(wordMax) {
		return false
	}
	// If stride exceeds the element type's maximum, the count is at
	// most 1 and thus always fits back into E.
	r.end = E(divCeil(r.Len(), stride))
	return true
}

// strideStep returns the per-pull increment: the stride clamped to the
// element type's maximum. When clamped, at most one value remains, so
// the increment is never observed.
func (r *Range[E]) strideStep(step uint) E {
	if k := step + 1; uint64(k) <= uint64(^E(0)) {
		return E(k)
	}
	return ^E(0)
}

func (r *Range[E]) strideNext(step uint) (E, bool) {
	if r.end == 0 {
		return 0, false
	}
	v := r.start
	// Wraps only on the final pull, after which start is never read.
	r.start = v + r.strideStep(step)
	r.end--
	return v, true
}

func (r *Range[E]) strideNextBack(step uint) (E, bool) {
	if r.end == 0 {
		return 0, false
	}
	// The back value is a real element of the original range, so the
	// multiply and add cannot wrap.
	r.end--
	return r.start + r.strideStep(step)*r.end, true
}

func (r *Range[E]) strideRemaining() uint {
	return uint(r.end)
}

func (r *Range[E]) strideAdvance(n, step uint) uint {
	m := min(n, uint(r.end))
	// A single wrapping multiply-add equals m wrapping increments.
	r.start += r.strideStep(step) * E(m)
	r.end -= E(m)
	return m
}

func (r *Range[E]) strideAdvanceBack(n uint) uint {
	m := min(n, uint(r.end))
	r.end -= E(m)
	return m
}
