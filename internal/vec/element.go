// Package vec provides the core container types for slas: fixed-length
// copy-on-write storage and the vector, matrix and tensor views over it.
package vec

// Element is the constraint for container element types.
// Two floating point precisions are supported, mirroring BLAS.
type Element interface {
	~float32 | ~float64
}

// Precision represents runtime type information for containers.
type Precision int

// Supported element precisions.
const (
	Float32 Precision = iota
	Float64
)

// Size returns the byte size of the precision.
func (p Precision) Size() int {
	if p == Float32 {
		return 4
	}
	return 8
}

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	if p == Float32 {
		return "float32"
	}
	return "float64"
}

// precisionOf infers Precision from a generic type T.
func precisionOf[T Element]() Precision {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return Float32
	}
	return Float64
}
