package vec

import "unsafe"

// Storage is a tagged union over an owned element buffer and a borrowed
// window into externally owned memory. The active variant is fixed at
// construction; the only transition is the Borrowed to Owned upgrade
// performed by Cow. The owned buffer is allocated once, at the container's
// fixed length, and never resized.
//
// The payload is a single slice header plus one discriminant flag, so a
// Storage passes by value at the cost of a flat slice for either variant.
type Storage[T Element] struct {
	data  []T
	owned bool
}

// NewOwned constructs an Owned Storage holding a copy of data.
func NewOwned[T Element](data []T) Storage[T] {
	buf := make([]T, len(data))
	copy(buf, data)
	return Storage[T]{data: buf, owned: true}
}

// ownedMove wraps an already-allocated buffer without copying.
// Callers hand over the buffer and must not retain it.
func ownedMove[T Element](buf []T) Storage[T] {
	return Storage[T]{data: buf, owned: true}
}

// Borrow constructs a Borrowed Storage viewing s. The referent stays owned
// by the caller; reads reflect its live contents, not a snapshot.
func Borrow[T Element](s []T) Storage[T] {
	return Storage[T]{data: s, owned: false}
}

// BorrowRaw constructs a Borrowed Storage over n elements of type T at ptr.
//
// This is the single unchecked entry point in the package: the caller must
// guarantee that ptr refers to at least n live elements for as long as
// anything reads through the returned Storage. Neither Storage nor Cow can
// detect a violated lifetime.
func BorrowRaw[T Element](ptr unsafe.Pointer, n int) Storage[T] {
	return Storage[T]{data: unsafe.Slice((*T)(ptr), n), owned: false}
}

// Len returns the fixed element count.
func (s Storage[T]) Len() int { return len(s.data) }

// IsOwned reports whether the Owned variant is active.
func (s Storage[T]) IsOwned() bool { return s.owned }

// Slice returns the elements behind either variant, O(1), no allocation.
// The returned slice is read-only by contract; all mutation is mediated
// by Cow.
func (s Storage[T]) Slice() []T { return s.data }

// mutSlice is the mutable access path, valid only on the Owned variant.
// Cow upgrades borrowed storage before ever reaching this.
func (s Storage[T]) mutSlice() []T {
	if !s.owned {
		panic("vec: mutable access to borrowed storage")
	}
	return s.data
}

// toOwned returns an Owned Storage holding a copy of the current contents.
func (s Storage[T]) toOwned() Storage[T] {
	return NewOwned(s.data)
}
