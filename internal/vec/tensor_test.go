package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnicola/slas/internal/backend/pure"
	"github.com/lnicola/slas/internal/vec"
)

func rangeSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestTensorReshapeRoundTrip(t *testing.T) {
	b := pure.New[float64]()
	v := vec.FromSlice(rangeSlice(27), b)

	cube, err := v.AsTensor(vec.Shape{3, 3, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{9, 3, 1}, cube.Strides())
	assert.Equal(t, 3, cube.Rank())

	// Coordinate (0,0,1) maps to flat offset 1; (0,1,0) to 3; (1,0,0) to 9.
	assert.Equal(t, v.At(1), cube.At(0, 0, 1))
	assert.Equal(t, v.At(3), cube.At(0, 1, 0))
	assert.Equal(t, v.At(9), cube.At(1, 0, 0))
	assert.Equal(t, 9, cube.Offset(1, 0, 0))
}

func TestTensorReshapeProductMismatch(t *testing.T) {
	b := pure.New[float64]()
	v := vec.FromSlice(rangeSlice(27), b)

	_, err := v.AsTensor(vec.Shape{3, 3, 4})
	require.ErrorIs(t, err, vec.ErrShapeMismatch)

	var shapeErr *vec.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "reshape", shapeErr.Op)
}

func TestTensorReshapeRejectsInvalidShape(t *testing.T) {
	b := pure.New[float64]()
	_, err := vec.TensorFromSlice(rangeSlice(4), vec.Shape{2, 0, 2}, b)
	require.Error(t, err)
}

func TestTensorZeroCopyReinterpretation(t *testing.T) {
	b := pure.New[float64]()
	ext := rangeSlice(8)
	v := vec.BorrowVector(ext, b)

	cube, err := v.AsTensor(vec.Shape{2, 2, 2})
	require.NoError(t, err)
	require.True(t, cube.IsBorrowed(), "reshape must not copy")

	// Shared storage: mutation through the tensor is observed by the
	// vector, while the referent stays untouched.
	cube.SetAt(42, 1, 1, 1)
	assert.True(t, v.IsOwned())
	assert.Equal(t, 42.0, v.At(7))
	assert.Equal(t, 7.0, ext[7])
}

func TestTensorCoordinatePanics(t *testing.T) {
	b := pure.New[float64]()
	cube, err := vec.TensorFromSlice(rangeSlice(8), vec.Shape{2, 2, 2}, b)
	require.NoError(t, err)

	assert.Panics(t, func() { cube.At(0, 0) })
	assert.Panics(t, func() { cube.At(0, 0, 2) })
}

func TestTensorMatMul(t *testing.T) {
	b := pure.New[float64]()
	// Row-major 2×3 and 3×2.
	a, err := vec.TensorFromSlice([]float64{1, 2, 3, 4, 5, 6}, vec.Shape{2, 3}, b)
	require.NoError(t, err)
	m, err := vec.TensorFromSlice([]float64{7, 8, 9, 10, 11, 12}, vec.Shape{3, 2}, b)
	require.NoError(t, err)

	c, err := a.MatMul(m)
	require.NoError(t, err)
	assert.Equal(t, vec.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Read())
}

func TestTensorMatMulShapeMismatch(t *testing.T) {
	b := pure.New[float64]()
	a, err := vec.TensorFromSlice(rangeSlice(6), vec.Shape{2, 3}, b)
	require.NoError(t, err)

	bad, err := vec.TensorFromSlice(rangeSlice(4), vec.Shape{2, 2}, b)
	require.NoError(t, err)
	_, err = a.MatMul(bad)
	require.ErrorIs(t, err, vec.ErrShapeMismatch)

	cube, err := vec.TensorFromSlice(rangeSlice(8), vec.Shape{2, 2, 2}, b)
	require.NoError(t, err)
	_, err = a.MatMul(cube)
	require.ErrorIs(t, err, vec.ErrShapeMismatch)
}
