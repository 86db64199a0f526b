// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride

import (
	"fmt"
	"unsafe"
)

// Unique is a wrapper around a non-nil *T that indicates the possessor
// of the wrapper owns the referent. It is a building block for owning
// containers; it never reads or writes the pointee and has no
// finalizer, so the owner of the memory remains responsible for
// teardown.
//
// Unlike a plain *T, a Unique is never nil, even if it is never
// dereferenced — though it may dangle, as with [Dangling]. The aliasing
// claim is documentation only: the type system does not enforce it, the
// abstraction using the Unique must.
//
// Unique is a plain copyable value. Copying it duplicates the ownership
// claim; the possessor decides which copy is authoritative. The zero
// value violates the non-nil invariant: always construct through
// [NewUnique], [UniqueUnchecked], [Dangling] or [CastUnique].
type Unique[T any] struct {
	ptr *T
}

// UniqueUnchecked creates a Unique from p without checking it.
// The caller must guarantee p is non-nil; passing nil violates the
// type's invariant and the behavior of every later operation on the
// wrapper is undefined.
func UniqueUnchecked[T any](p *T) Unique[T] {
	return Unique[T]{ptr: p}
}

// NewUnique creates a Unique from p if p is non-nil.
// Returns false exactly when p is nil; on success the stored pointer
// equals p.
func NewUnique[T any](p *T) (Unique[T], bool) {
	if p == nil {
		return Unique[T]{}, false
	}
	return Unique[T]{ptr: p}, true
}

// Dangling creates a Unique that is dangling, but well-aligned for T.
// This is useful for initializing containers that lazily allocate.
//
// The address may coincide with a real allocation, so it must not be
// used as a "not yet initialized" sentinel; track initialization by
// other means. Dereferencing the pointer is undefined behavior.
func Dangling[T any]() Unique[T] {
	var zero T
	return Unique[T]{ptr: (*T)(unsafe.Pointer(unsafe.Alignof(zero)))}
}

// AsPtr returns the underlying pointer. Never nil.
//
// Dereferencing it is the caller's obligation to justify: the wrapper
// guarantees non-nil, not validity.
func (u Unique[T]) AsPtr() *T {
	return u.ptr
}

// Addr returns the stored address as a raw word. Bit-equal to AsPtr.
func (u Unique[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(u.ptr))
}

// CastUnique reinterprets the pointee type, preserving the address
// bit-for-bit. No memory is touched.
func CastUnique[U, T any](u Unique[T]) Unique[U] {
	return Unique[U]{ptr: (*U)(unsafe.Pointer(u.ptr))}
}

// String formats the stored address.
func (u Unique[T]) String() string {
	return fmt.Sprintf("%p", u.ptr)
}
