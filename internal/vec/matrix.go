package vec

import "fmt"

// Matrix is a fixed-shape column-major matrix over copy-on-write storage:
// consecutive buffer offsets walk down a column before moving to the next
// column, matching the BLAS convention. rows*cols must equal the backing
// length; this is checked before the container exists, so no Matrix value
// ever carries an inconsistent shape.
//
// Two indexing surfaces exist for the same layout. At(i, j) is raw
// array-order indexing where the first index selects the column, mirroring
// the storage order. AtRC(r, c) addresses the logical cell at row r,
// column c. Both resolve to the same flat offset for the same cell.
type Matrix[T Element, B Backend[T]] struct {
	cow        *Cow[T]
	rows, cols int
	backend    B
}

// NewMatrix builds a rows×cols matrix over an existing Cow, zero copy.
func NewMatrix[T Element, B Backend[T]](c *Cow[T], rows, cols int, b B) (*Matrix[T, B], error) {
	if rows <= 0 || cols <= 0 || rows*cols != c.Len() {
		return nil, shapeErr("matrix", []int{rows, cols}, []int{c.Len()})
	}
	return &Matrix[T, B]{cow: c, rows: rows, cols: cols, backend: b}, nil
}

// MatrixFromSlice copies column-major data into an owned rows×cols matrix.
func MatrixFromSlice[T Element, B Backend[T]](data []T, rows, cols int, b B) (*Matrix[T, B], error) {
	if rows <= 0 || cols <= 0 || rows*cols != len(data) {
		return nil, shapeErr("matrix", []int{rows, cols}, []int{len(data)})
	}
	return &Matrix[T, B]{cow: CowOf(data), rows: rows, cols: cols, backend: b}, nil
}

// Rows returns the row count.
func (m *Matrix[T, B]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T, B]) Cols() int { return m.cols }

// Len returns the total element count.
func (m *Matrix[T, B]) Len() int { return m.cow.Len() }

// IsOwned reports whether the matrix owns its buffer.
func (m *Matrix[T, B]) IsOwned() bool { return m.cow.IsOwned() }

// IsBorrowed reports whether the matrix still reads external memory.
func (m *Matrix[T, B]) IsBorrowed() bool { return m.cow.IsBorrowed() }

// Precision returns the runtime element precision.
func (m *Matrix[T, B]) Precision() Precision { return precisionOf[T]() }

// Backend returns the compute backend.
func (m *Matrix[T, B]) Backend() B { return m.backend }

// Read returns the column-major elements, O(1), no copy.
func (m *Matrix[T, B]) Read() []T { return m.cow.Read() }

// offset maps the logical cell at row r, column c to its flat
// column-major offset. Panics on out-of-range indices.
func (m *Matrix[T, B]) offset(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("vec: index [%d %d] out of bounds [%d %d]", r, c, m.rows, m.cols))
	}
	return r + c*m.rows
}

// At is raw array-order indexing: i selects the column, j the row, the
// order consecutive elements appear in the column-major buffer.
// At(i, j) addresses the same cell as AtRC(j, i).
func (m *Matrix[T, B]) At(i, j int) T { return m.Read()[m.offset(j, i)] }

// AtRC returns the element at logical row r, column c.
func (m *Matrix[T, B]) AtRC(r, c int) T { return m.Read()[m.offset(r, c)] }

// Set writes the cell addressed in raw array order (column i, row j)
// through the copy-on-write path.
func (m *Matrix[T, B]) Set(i, j int, val T) { m.SetRC(j, i, val) }

// SetRC writes the element at logical row r, column c through the
// copy-on-write path.
func (m *Matrix[T, B]) SetRC(r, c int, val T) {
	off := m.offset(r, c)
	m.cow.Mutate(func(data []T) {
		data[off] = val
	})
}

// Transpose returns a freshly owned cols×rows transpose.
func (m *Matrix[T, B]) Transpose() *Matrix[T, B] {
	src := m.Read()
	buf := make([]T, len(src))
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			buf[c+r*m.cols] = src[r+c*m.rows]
		}
	}
	return &Matrix[T, B]{cow: cowOwnedMove(buf), rows: m.cols, cols: m.rows, backend: m.backend}
}

// Mul computes m·other through the backend's Gemm, returning a freshly
// owned rows×other.cols matrix. The inner dimensions must agree.
func (m *Matrix[T, B]) Mul(other *Matrix[T, B]) (*Matrix[T, B], error) {
	if m.cols != other.rows {
		return nil, shapeErr("matmul", []int{m.rows, m.cols}, []int{other.rows, other.cols})
	}
	out, err := m.backend.Gemm(m.Read(), m.rows, m.cols, other.Read(), other.rows, other.cols)
	if err != nil {
		return nil, err
	}
	return &Matrix[T, B]{cow: cowOwnedMove(out), rows: m.rows, cols: other.cols, backend: m.backend}, nil
}

// Equal compares element values, independent of storage variant.
func (m *Matrix[T, B]) Equal(other *Matrix[T, B]) bool {
	return m.rows == other.rows && m.cols == other.cols && m.cow.Equal(other.cow)
}

// String formats the column-major element values.
func (m *Matrix[T, B]) String() string {
	return fmt.Sprintf("%d×%d%s", m.rows, m.cols, m.cow.String())
}
