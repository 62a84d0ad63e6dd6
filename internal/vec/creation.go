package vec

import "unsafe"

// Zeros creates an owned length-n vector of zeros.
//
// Example:
//
//	b := pure.New[float32]()
//	v := vec.Zeros(3, b)
func Zeros[T Element, B Backend[T]](n int, b B) *Vector[T, B] {
	return &Vector[T, B]{cow: cowOwnedMove(make([]T, n)), backend: b}
}

// Ones creates an owned length-n vector of ones.
func Ones[T Element, B Backend[T]](n int, b B) *Vector[T, B] {
	return Full(n, T(1), b)
}

// Full creates an owned length-n vector filled with value.
func Full[T Element, B Backend[T]](n int, value T, b B) *Vector[T, B] {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = value
	}
	return &Vector[T, B]{cow: cowOwnedMove(buf), backend: b}
}

// FromSlice copies data into an owned vector.
func FromSlice[T Element, B Backend[T]](data []T, b B) *Vector[T, B] {
	return &Vector[T, B]{cow: CowOf(data), backend: b}
}

// BorrowVector wraps a caller-owned slice without copying. Reads reflect
// the live referent until the first mutation upgrades the vector to owned
// storage.
func BorrowVector[T Element, B Backend[T]](data []T, b B) *Vector[T, B] {
	return &Vector[T, B]{cow: CowBorrow(data), backend: b}
}

// BorrowVectorRaw wraps n elements at a raw address without copying.
// Unchecked lifetime contract: see BorrowRaw.
func BorrowVectorRaw[T Element, B Backend[T]](ptr unsafe.Pointer, n int, b B) *Vector[T, B] {
	return &Vector[T, B]{cow: NewCow(BorrowRaw[T](ptr, n)), backend: b}
}

// Eye creates the owned n×n identity matrix.
func Eye[T Element, B Backend[T]](n int, b B) *Matrix[T, B] {
	buf := make([]T, n*n)
	for i := 0; i < n; i++ {
		buf[i+i*n] = 1
	}
	return &Matrix[T, B]{cow: cowOwnedMove(buf), rows: n, cols: n, backend: b}
}
