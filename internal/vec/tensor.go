package vec

import "fmt"

// Tensor is a runtime-shaped strided view over copy-on-write storage.
//
// Unlike Vector and Matrix, whose sizes are fixed when the container is
// constructed, a Tensor's shape is a runtime value: coordinates map to flat
// offsets through a row-major stride table computed from the shape, and
// shape violations surface as recoverable *ShapeError values rather than
// construction failures elsewhere.
type Tensor[T Element, B Backend[T]] struct {
	cow     *Cow[T]
	shape   Shape
	strides []int
	backend B
}

// NewTensor wraps an existing Cow under shape, zero copy. The shape product
// must equal the backing length.
func NewTensor[T Element, B Backend[T]](c *Cow[T], shape Shape, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != c.Len() {
		return nil, shapeErr("reshape", shape, Shape{c.Len()})
	}
	return &Tensor[T, B]{
		cow:     c,
		shape:   shape.Clone(),
		strides: shape.Strides(),
		backend: b,
	}, nil
}

// TensorFromSlice copies data into an owned tensor under shape.
func TensorFromSlice[T Element, B Backend[T]](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return NewTensor(CowOf(data), shape, b)
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape { return t.shape }

// Strides returns the row-major stride table.
func (t *Tensor[T, B]) Strides() []int { return t.strides }

// Rank returns the number of dimensions.
func (t *Tensor[T, B]) Rank() int { return len(t.shape) }

// Len returns the total element count.
func (t *Tensor[T, B]) Len() int { return t.cow.Len() }

// IsOwned reports whether the tensor owns its buffer.
func (t *Tensor[T, B]) IsOwned() bool { return t.cow.IsOwned() }

// IsBorrowed reports whether the tensor still reads external memory.
func (t *Tensor[T, B]) IsBorrowed() bool { return t.cow.IsBorrowed() }

// Backend returns the compute backend.
func (t *Tensor[T, B]) Backend() B { return t.backend }

// Read returns the flat elements, O(1), no copy.
func (t *Tensor[T, B]) Read() []T { return t.cow.Read() }

// Offset converts a rank-length coordinate tuple into the flat offset via
// the stride table. Panics on wrong arity or out-of-range coordinates.
func (t *Tensor[T, B]) Offset(coords ...int) int {
	if len(coords) != len(t.shape) {
		panic(fmt.Sprintf("vec: %d coordinates for rank-%d tensor", len(coords), len(t.shape)))
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			panic(fmt.Sprintf("vec: coordinate %v out of bounds %v", coords, t.shape))
		}
		off += c * t.strides[i]
	}
	return off
}

// At returns the element at the given coordinates.
func (t *Tensor[T, B]) At(coords ...int) T {
	return t.Read()[t.Offset(coords...)]
}

// SetAt writes the element at the given coordinates through the
// copy-on-write path.
func (t *Tensor[T, B]) SetAt(val T, coords ...int) {
	off := t.Offset(coords...)
	t.cow.Mutate(func(data []T) {
		data[off] = val
	})
}

// Reshape returns a new view of the same storage under a different shape.
// Zero copy; fails if the new shape's product differs.
func (t *Tensor[T, B]) Reshape(shape Shape) (*Tensor[T, B], error) {
	return NewTensor(t.cow, shape, t.backend)
}

// MatMul multiplies two rank-2 tensors under their row-major
// interpretation, returning a freshly owned rank-2 result. Every violation
// on this path is a runtime *ShapeError; there is no compile-time arm for
// runtime shapes.
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if t.Rank() != 2 || other.Rank() != 2 {
		return nil, shapeErr("matmul", []int{2, 2}, []int{t.Rank(), other.Rank()})
	}
	m, k := t.shape[0], t.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		return nil, shapeErr("matmul", Shape{m, k}, Shape{k2, n})
	}
	// A row-major m×k buffer is the column-major k×m transpose, so the
	// row-major product C = A·B is computed column-major as Bᵀ·Aᵀ.
	out, err := t.backend.Gemm(other.Read(), n, k, t.Read(), k, m)
	if err != nil {
		return nil, err
	}
	res, err := NewTensor(cowOwnedMove(out), Shape{m, n}, t.backend)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Equal compares shape and element values, independent of storage variant.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) bool {
	return t.shape.Equal(other.shape) && t.cow.Equal(other.cow)
}

// String formats the shape and flat element values.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("%v%s", t.shape, t.cow.String())
}
