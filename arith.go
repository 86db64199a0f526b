// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

import "math/bits"

// Machine-word arithmetic primitives.
// All counts and indices in the package are measured in uint, the
// platform's native unsigned word.

// wordMax is the largest value representable in a machine word.
const wordMax = ^uint(0)

// checkedMul returns a*b and true, or zero and false on overflow.
func checkedMul(a, b uint) (uint, bool) {
	hi, lo := bits.Mul(a, b)
	return lo, hi == 0
}

// saturatingMul returns a*b, clamped to wordMax on overflow.
func saturatingMul(a, b uint) uint {
	hi, lo := bits.Mul(a, b)
	if hi != 0 {
		return wordMax
	}
	return lo
}

// saturatingAdd returns a+b, clamped to wordMax on overflow.
func saturatingAdd(a, b uint) uint {
	sum, carry := bits.Add(a, b, 0)
	if carry != 0 {
		return wordMax
	}
	return sum
}

// divCeil returns ceil(a/b). b must not be zero.
func divCeil(a, b uint) uint {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
