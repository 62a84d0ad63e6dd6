package vec

// Backend defines the numeric-operation contract that all compute backends
// must implement. Backends operate on raw slices, not on the container
// types, so containers delegate explicitly through Read and Mutate.
//
// Implementations:
//   - internal/backend/pure: in-process Go loops, no external library
//   - internal/backend/native: gonum BLAS dispatch; building with the
//     netlib tag routes through the system CBLAS library
//
// Both implementations must agree on results up to the element type's
// floating-point rounding. Length and dimension violations surface as
// *ShapeError before any write.
type Backend[T Element] interface {
	// Dot returns the inner product of x and y.
	// len(x) must equal len(y).
	Dot(x, y []T) (T, error)

	// Axpy computes y = alpha*x + y in place.
	// len(x) must equal len(y).
	Axpy(alpha T, x []T, y []T) error

	// Normalize scales x in place to unit Euclidean norm.
	// A zero vector is left unchanged.
	Normalize(x []T) error

	// Gemm multiplies the ar×ac matrix a by the br×bc matrix b, both
	// column-major, and returns a freshly allocated ar×bc column-major
	// result. ac must equal br.
	Gemm(a []T, ar, ac int, b []T, br, bc int) ([]T, error)

	// Name identifies the backend ("pure", "native").
	Name() string
}
