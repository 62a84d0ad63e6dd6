// Package native implements the compute backend on top of a BLAS library,
// dispatched through gonum's blas32/blas64 registration.
//
// The default build resolves to gonum's own BLAS implementation. Building
// with -tags netlib swaps in the cgo CBLAS bindings at init time; per the
// design, backend availability is a build-time decision and never a
// per-call runtime error.
package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/lnicola/slas/internal/vec"
)

// Backend forwards every contract operation to the registered BLAS
// implementation using its (data, inc) vector and column-major
// (m, n, k, lda/ldb/ldc) matrix calling convention.
// The zero value is ready to use.
type Backend[T vec.Element] struct{}

// New creates a BLAS-backed backend.
func New[T vec.Element]() Backend[T] {
	return Backend[T]{}
}

// Name returns the backend name.
func (Backend[T]) Name() string { return "native" }

// Dot returns the inner product of x and y.
func (Backend[T]) Dot(x, y []T) (T, error) {
	if err := vec.CheckLen("dot", len(x), len(y)); err != nil {
		return 0, err
	}
	n := len(x)
	switch xs := any(x).(type) {
	case []float32:
		ys := any(y).([]float32)
		return T(blas32.Implementation().Sdot(n, xs, 1, ys, 1)), nil
	default:
		xd := xs.([]float64)
		yd := any(y).([]float64)
		return T(blas64.Implementation().Ddot(n, xd, 1, yd, 1)), nil
	}
}

// Axpy computes y = alpha*x + y in place.
func (Backend[T]) Axpy(alpha T, x []T, y []T) error {
	if err := vec.CheckLen("axpy", len(x), len(y)); err != nil {
		return err
	}
	n := len(x)
	switch xs := any(x).(type) {
	case []float32:
		blas32.Implementation().Saxpy(n, float32(alpha), xs, 1, any(y).([]float32), 1)
	default:
		blas64.Implementation().Daxpy(n, float64(alpha), xs.([]float64), 1, any(y).([]float64), 1)
	}
	return nil
}

// Normalize scales x in place to unit Euclidean norm.
// A zero vector is left unchanged.
func (Backend[T]) Normalize(x []T) error {
	n := len(x)
	switch xs := any(x).(type) {
	case []float32:
		impl := blas32.Implementation()
		norm := impl.Snrm2(n, xs, 1)
		if norm != 0 {
			impl.Sscal(n, 1/norm, xs, 1)
		}
	default:
		xd := xs.([]float64)
		impl := blas64.Implementation()
		norm := impl.Dnrm2(n, xd, 1)
		if norm != 0 {
			impl.Dscal(n, 1/norm, xd, 1)
		}
	}
	return nil
}

// Gemm multiplies the column-major ar×ac matrix a by the column-major
// br×bc matrix b into a freshly allocated ar×bc column-major result.
//
// gonum's BLAS interface is row-major, and a column-major p×q buffer is
// the row-major q×p transpose, so the product is issued as Bᵀ·Aᵀ = Cᵀ
// with swapped operands; the resulting row-major Cᵀ buffer is exactly the
// column-major C.
func (Backend[T]) Gemm(a []T, ar, ac int, b []T, br, bc int) ([]T, error) {
	if err := vec.CheckGemm("gemm", ar, ac, len(a), br, bc, len(b)); err != nil {
		return nil, err
	}
	out := make([]T, ar*bc)
	switch as := any(a).(type) {
	case []float32:
		blas32.Implementation().Sgemm(blas.NoTrans, blas.NoTrans,
			bc, ar, ac,
			1, any(b).([]float32), br,
			as, ar,
			0, any(out).([]float32), ar)
	default:
		blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans,
			bc, ar, ac,
			1, any(b).([]float64), br,
			as.([]float64), ar,
			0, any(out).([]float64), ar)
	}
	return out, nil
}
