package vec

import "fmt"

// Cow wraps a Storage with copy-on-write mutation semantics.
//
// Reads are always legal and O(1); while the Storage is Borrowed they
// reflect the live contents of the external referent. The first mutation
// copies all elements into a fresh Owned Storage before the mutation is
// applied; from then on the container mutates in place for the rest of its
// lifetime. There is no downgrade back to Borrowed, so the copy happens at
// most once per container.
type Cow[T Element] struct {
	storage Storage[T]
}

// NewCow wraps an existing Storage by move; no copy.
func NewCow[T Element](s Storage[T]) *Cow[T] {
	return &Cow[T]{storage: s}
}

// CowOf constructs an Owned Cow holding a copy of data.
func CowOf[T Element](data []T) *Cow[T] {
	return &Cow[T]{storage: NewOwned(data)}
}

// CowBorrow constructs a Borrowed Cow over a caller-owned slice.
func CowBorrow[T Element](s []T) *Cow[T] {
	return &Cow[T]{storage: Borrow(s)}
}

// cowOwnedMove wraps an already-allocated buffer without copying.
func cowOwnedMove[T Element](buf []T) *Cow[T] {
	return &Cow[T]{storage: ownedMove(buf)}
}

// Len returns the fixed element count.
func (c *Cow[T]) Len() int { return c.storage.Len() }

// IsOwned reports whether the container owns its buffer.
func (c *Cow[T]) IsOwned() bool { return c.storage.IsOwned() }

// IsBorrowed reports whether the container still reads external memory.
func (c *Cow[T]) IsBorrowed() bool { return !c.storage.IsOwned() }

// Read returns the current elements. Never copies.
func (c *Cow[T]) Read() []T { return c.storage.Slice() }

// Mutate applies f to the owned element buffer, upgrading Borrowed storage
// to Owned first. The upgrade snapshots the referent with a single O(N)
// copy; a second Mutate finds the storage already Owned and copies nothing.
// Shape validation belongs before Mutate: once f runs, the buffer is
// assumed modified.
func (c *Cow[T]) Mutate(f func(data []T)) {
	if !c.storage.owned {
		c.storage = c.storage.toOwned()
	}
	f(c.storage.mutSlice())
}

// ToOwned forces ownership without mutating, detaching the container from
// its external referent. A no-op on Owned storage.
func (c *Cow[T]) ToOwned() {
	if !c.storage.owned {
		c.storage = c.storage.toOwned()
	}
}

// Equal compares element values through Read, independent of variant.
func (c *Cow[T]) Equal(other *Cow[T]) bool {
	a, b := c.Read(), other.Read()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the element values, independent of variant.
func (c *Cow[T]) String() string {
	return fmt.Sprint(c.Read())
}
