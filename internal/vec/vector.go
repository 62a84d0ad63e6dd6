package vec

// Vector is a fixed-length numeric vector over copy-on-write storage.
//
// Type Parameters:
//   - T: Element type (float32 or float64)
//   - B: Compute backend (must implement Backend[T])
//
// The backend is part of the container type, so a vector's dispatch path
// is chosen at construction and never changes over its lifetime.
type Vector[T Element, B Backend[T]] struct {
	cow     *Cow[T]
	backend B
}

// NewVector wraps an existing Cow by reference; no copy.
func NewVector[T Element, B Backend[T]](c *Cow[T], b B) *Vector[T, B] {
	return &Vector[T, B]{cow: c, backend: b}
}

// Len returns the fixed element count.
func (v *Vector[T, B]) Len() int { return v.cow.Len() }

// IsOwned reports whether the vector owns its buffer.
func (v *Vector[T, B]) IsOwned() bool { return v.cow.IsOwned() }

// IsBorrowed reports whether the vector still reads external memory.
func (v *Vector[T, B]) IsBorrowed() bool { return v.cow.IsBorrowed() }

// Precision returns the runtime element precision.
func (v *Vector[T, B]) Precision() Precision { return precisionOf[T]() }

// Backend returns the compute backend.
func (v *Vector[T, B]) Backend() B { return v.backend }

// Cow returns the underlying copy-on-write container. Views constructed
// from it share storage with the vector.
func (v *Vector[T, B]) Cow() *Cow[T] { return v.cow }

// Read returns the current elements, O(1), no copy.
func (v *Vector[T, B]) Read() []T { return v.cow.Read() }

// At returns element i. Panics if i is out of range.
func (v *Vector[T, B]) At(i int) T { return v.Read()[i] }

// Set writes element i through the copy-on-write path.
// Panics if i is out of range.
func (v *Vector[T, B]) Set(i int, val T) {
	if i < 0 || i >= v.Len() {
		panic("vec: vector index out of range")
	}
	v.cow.Mutate(func(data []T) {
		data[i] = val
	})
}

// Dot returns the inner product with other via the backend.
func (v *Vector[T, B]) Dot(other *Vector[T, B]) (T, error) {
	return v.backend.Dot(v.Read(), other.Read())
}

// AddScaled computes v = v + alpha*x in place through the copy-on-write
// path. The length check runs first, so a mismatch never forces a copy.
func (v *Vector[T, B]) AddScaled(alpha T, x *Vector[T, B]) error {
	if err := CheckLen("axpy", x.Len(), v.Len()); err != nil {
		return err
	}
	var err error
	v.cow.Mutate(func(data []T) {
		err = v.backend.Axpy(alpha, x.Read(), data)
	})
	return err
}

// Normalize scales the vector to unit norm in place through the
// copy-on-write path. A zero vector is left unchanged.
func (v *Vector[T, B]) Normalize() error {
	var err error
	v.cow.Mutate(func(data []T) {
		err = v.backend.Normalize(data)
	})
	return err
}

// AsMatrix reinterprets the vector as a rows×cols column-major matrix.
// Zero copy: the matrix shares the vector's copy-on-write storage, so a
// mutation through either view is observed by both. rows*cols must equal
// the vector length.
func (v *Vector[T, B]) AsMatrix(rows, cols int) (*Matrix[T, B], error) {
	return NewMatrix(v.cow, rows, cols, v.backend)
}

// AsTensor reinterprets the vector under a runtime shape with row-major
// strides. Zero copy, same sharing rules as AsMatrix. The shape product
// must equal the vector length.
func (v *Vector[T, B]) AsTensor(shape Shape) (*Tensor[T, B], error) {
	return NewTensor(v.cow, shape, v.backend)
}

// Equal compares element values, independent of storage variant.
func (v *Vector[T, B]) Equal(other *Vector[T, B]) bool {
	return v.cow.Equal(other.cow)
}

// String formats the element values.
func (v *Vector[T, B]) String() string { return v.cow.String() }
