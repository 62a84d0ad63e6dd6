package pure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnicola/slas/internal/backend/pure"
	"github.com/lnicola/slas/internal/vec"
)

func TestDot(t *testing.T) {
	b := pure.New[float64]()

	d, err := b.Dot([]float64{1, 2, 3.2}, []float64{3, 0.4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 19.8, d, 1e-12)
}

func TestDotFloat32(t *testing.T) {
	b := pure.New[float32]()

	d, err := b.Dot([]float32{1, 2, 3.2}, []float32{3, 0.4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 19.8, d, 1e-5)
}

func TestDotCommutative(t *testing.T) {
	b := pure.New[float64]()
	x := []float64{0.5, -1.25, 3, 7.75, 0.125}
	y := []float64{2, 0.25, -4.5, 1, 8}

	xy, err := b.Dot(x, y)
	require.NoError(t, err)
	yx, err := b.Dot(y, x)
	require.NoError(t, err)
	assert.InDelta(t, xy, yx, 1e-12)
}

func TestDotLengthMismatch(t *testing.T) {
	b := pure.New[float64]()
	_, err := b.Dot([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestAxpy(t *testing.T) {
	b := pure.New[float64]()
	y := []float64{10, 20, 30}

	require.NoError(t, b.Axpy(2, []float64{1, 2, 3}, y))
	assert.Equal(t, []float64{12, 24, 36}, y)

	require.ErrorIs(t, b.Axpy(1, []float64{1}, y), vec.ErrShapeMismatch)
}

func TestNormalize(t *testing.T) {
	b := pure.New[float64]()
	x := []float64{3, 4}

	require.NoError(t, b.Normalize(x))
	assert.InDelta(t, 0.6, x[0], 1e-12)
	assert.InDelta(t, 0.8, x[1], 1e-12)

	var norm float64
	for _, v := range x {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-12)
}

func TestNormalizeZeroVector(t *testing.T) {
	b := pure.New[float64]()
	x := []float64{0, 0, 0}

	require.NoError(t, b.Normalize(x))
	assert.Equal(t, []float64{0, 0, 0}, x, "zero vector stays unchanged")
}

func TestGemm(t *testing.T) {
	b := pure.New[float64]()

	// Column-major 2×3 · 3×2, both filled [1..6].
	out, err := b.Gemm([]float64{1, 2, 3, 4, 5, 6}, 2, 3, []float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{22, 28, 49, 64}, out)
}

func TestGemmValidation(t *testing.T) {
	b := pure.New[float64]()

	// Inner dimension mismatch.
	_, err := b.Gemm([]float64{1, 2, 3, 4}, 2, 2, []float64{1, 2, 3}, 3, 1)
	require.ErrorIs(t, err, vec.ErrShapeMismatch)

	// Buffer length inconsistent with declared dims.
	_, err = b.Gemm([]float64{1, 2, 3}, 2, 2, []float64{1, 2}, 2, 1)
	require.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestName(t *testing.T) {
	assert.Equal(t, "pure", pure.New[float64]().Name())
}
