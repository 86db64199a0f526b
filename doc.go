// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stride provides low-level iteration and ownership primitives
// in Go.
//
// The core type [StepBy] is a pull-based iterator adapter that yields
// every n-th element of an underlying lazy sequence: the 0th, n-th,
// 2n-th, … items, from either end, with exact length accounting.
//
// # Design Philosophy
//
// stride provides:
//   - Minimal but complete interfaces for lazy pull-based sequences
//   - Overflow-safe index arithmetic on the machine word throughout
//   - Allocation-free pulls on both the generic and the specialized path
//
// # Iteration Protocol
//
// A lazy sequence implements [Iterator]: Next pulls one element, Nth
// skips n elements and pulls the next, SizeHint bounds the remaining
// count. Sequences that know their exact remaining length implement
// [ExactSizeIterator], and sequences that can also be consumed from the
// back implement [DoubleEndedIterator]. [Range] and [SliceIter] are the
// package's concrete sequences.
//
// # Stepping
//
//   - [New]: wrap a sequence with a positive stride n
//   - [StepBy.Next], [StepBy.Nth]: forward pulls
//   - [StepBy.NextBack], [StepBy.NthBack]: reverse pulls over
//     double-ended inners; both directions consume the same abstract
//     sequence, never reordering or duplicating an element
//   - [Fold], [TryFold], [RFold], [TryRFold]: consuming traversals,
//     short-circuiting on the caller's error
//
// When the inner sequence is a half-open integer [Range] whose element
// width fits the machine word, construction rewrites the range into a
// (next value, remaining count) pair and every subsequent operation runs
// in constant time per element, with no per-step Nth dispatch. The two
// paths are behaviorally identical; the specialization is invisible to
// callers.
//
// # Ownership
//
// [Unique] is a copyable value carrying a non-nil pointer together with
// a claim of unique ownership over its pointee. It never reads or writes
// the pointee and has no finalizer: it exists to let container authors
// document single ownership that the raw pointer type cannot express.
// Contract violations (nil into [UniqueUnchecked], dereferencing a
// [Dangling] pointer) are undefined behavior, not checked errors.
package stride
