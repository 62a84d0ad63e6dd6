// Package pure implements the compute backend with plain Go loops over
// in-process slices, with no external math library.
package pure

import (
	"math"

	"github.com/lnicola/slas/internal/vec"
)

// Backend is the pure Go implementation of vec.Backend.
// The zero value is ready to use.
type Backend[T vec.Element] struct{}

// New creates a pure Go backend.
func New[T vec.Element]() Backend[T] {
	return Backend[T]{}
}

// Name returns the backend name.
func (Backend[T]) Name() string { return "pure" }

// Dot returns the inner product of x and y.
func (Backend[T]) Dot(x, y []T) (T, error) {
	if err := vec.CheckLen("dot", len(x), len(y)); err != nil {
		return 0, err
	}
	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum, nil
}

// Axpy computes y = alpha*x + y in place.
func (Backend[T]) Axpy(alpha T, x []T, y []T) error {
	if err := vec.CheckLen("axpy", len(x), len(y)); err != nil {
		return err
	}
	for i := range x {
		y[i] += alpha * x[i]
	}
	return nil
}

// Normalize scales x in place to unit Euclidean norm.
// A zero vector is left unchanged.
func (Backend[T]) Normalize(x []T) error {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return nil
	}
	inv := T(1 / norm)
	for i := range x {
		x[i] *= inv
	}
	return nil
}

// Gemm multiplies the column-major ar×ac matrix a by the column-major
// br×bc matrix b into a freshly allocated ar×bc column-major result.
func (Backend[T]) Gemm(a []T, ar, ac int, b []T, br, bc int) ([]T, error) {
	if err := vec.CheckGemm("gemm", ar, ac, len(a), br, bc, len(b)); err != nil {
		return nil, err
	}
	out := make([]T, ar*bc)
	for j := 0; j < bc; j++ {
		dst := out[j*ar : (j+1)*ar]
		for l := 0; l < ac; l++ {
			f := b[l+j*br]
			if f == 0 {
				continue
			}
			col := a[l*ar : (l+1)*ar]
			for i := range col {
				dst[i] += f * col[i]
			}
		}
	}
	return out, nil
}
