// Package gatomic provides generic wrappers around sync/atomic's
// pointer operations, for publishing a value of any type T through a
// *T field without a mutex.
package gatomic

import (
	"sync/atomic"
	"unsafe"
)

// LoadPointer atomically loads *addr.
func LoadPointer[T any](addr **T) *T {
	return (*T)(atomic.LoadPointer((*unsafe.Pointer)(unsafe.Pointer(addr))))
}

// StorePointer atomically sets *addr to val.
func StorePointer[T any](addr **T, val *T) {
	atomic.StorePointer((*unsafe.Pointer)(unsafe.Pointer(addr)), unsafe.Pointer(val))
}

// CompareAndSwapPointer atomically sets *addr to new if it currently
// holds old, reporting whether the swap happened.
func CompareAndSwapPointer[T any](addr **T, old, new *T) (swapped bool) {
	return atomic.CompareAndSwapPointer(
		(*unsafe.Pointer)(unsafe.Pointer(addr)),
		unsafe.Pointer(old),
		unsafe.Pointer(new),
	)
}
