// Copyright 2026 The slas Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the public API for slas containers.
//
// The package defines fixed-length numeric containers with copy-on-write
// storage and backend-routed arithmetic:
//   - Storage[T]: tagged union over owned and borrowed element buffers
//   - Cow[T]: copy-on-write wrapper, the single mutation choke point
//   - Vector[T, B], Matrix[T, B], Tensor[T, B]: typed views over a Cow
//   - Backend[T]: the numeric operation contract backends implement
//
// Example:
//
//	b := pure.New[float64]()
//	x := vec.FromSlice([]float64{1, 2, 3.2}, b)
//	y := vec.FromSlice([]float64{3, 0.4, 5}, b)
//	d, err := x.Dot(y) // 19.8
package vec

import (
	"unsafe"

	"github.com/lnicola/slas/internal/vec"
)

// Element is the constraint for container element types.
// Supported types: float32, float64.
type Element = vec.Element

// Precision represents runtime type information for containers.
type Precision = vec.Precision

// Precision constants.
const (
	Float32 Precision = vec.Float32
	Float64 Precision = vec.Float64
)

// Shape represents the dimension sizes of a tensor view.
// Example: Shape{3, 3, 3} has row-major strides [9 3 1].
type Shape = vec.Shape

// Storage is a tagged union over an owned element buffer and a borrowed
// window into externally owned memory.
type Storage[T Element] = vec.Storage[T]

// Cow wraps a Storage with copy-on-write mutation semantics: the first
// mutation of borrowed storage copies all elements into an owned buffer.
type Cow[T Element] = vec.Cow[T]

// Backend is the numeric operation contract every compute backend
// implements. See backend/pure and backend/native.
type Backend[T Element] = vec.Backend[T]

// Vector is a fixed-length numeric vector over copy-on-write storage.
//
// T is the element type (float32, float64); B is the compute backend,
// fixed at the type level so dispatch never changes mid-lifetime.
type Vector[T Element, B Backend[T]] = vec.Vector[T, B]

// Matrix is a fixed-shape column-major matrix over copy-on-write storage.
type Matrix[T Element, B Backend[T]] = vec.Matrix[T, B]

// Tensor is a runtime-shaped, row-major strided view over copy-on-write
// storage.
type Tensor[T Element, B Backend[T]] = vec.Tensor[T, B]

// ShapeError reports operand lengths or dimensions incompatible with the
// requested operation.
type ShapeError = vec.ShapeError

// Error sentinels, matchable with errors.Is.
var (
	ErrShapeMismatch      = vec.ErrShapeMismatch
	ErrBackendUnavailable = vec.ErrBackendUnavailable
)

// Storage and Cow construction.

// NewOwned constructs an Owned Storage holding a copy of data.
func NewOwned[T Element](data []T) Storage[T] { return vec.NewOwned(data) }

// Borrow constructs a Borrowed Storage viewing a caller-owned slice.
func Borrow[T Element](s []T) Storage[T] { return vec.Borrow(s) }

// BorrowRaw constructs a Borrowed Storage over n elements at a raw
// address. Unchecked lifetime contract: the caller must guarantee the
// referent outlives every read through the result.
func BorrowRaw[T Element](ptr unsafe.Pointer, n int) Storage[T] {
	return vec.BorrowRaw[T](ptr, n)
}

// NewCow wraps an existing Storage by move; no copy.
func NewCow[T Element](s Storage[T]) *Cow[T] { return vec.NewCow(s) }

// CowOf constructs an Owned Cow holding a copy of data.
func CowOf[T Element](data []T) *Cow[T] { return vec.CowOf(data) }

// CowBorrow constructs a Borrowed Cow over a caller-owned slice.
func CowBorrow[T Element](s []T) *Cow[T] { return vec.CowBorrow(s) }

// Vector construction.

// Zeros creates an owned length-n vector of zeros.
func Zeros[T Element, B Backend[T]](n int, b B) *Vector[T, B] { return vec.Zeros[T, B](n, b) }

// Ones creates an owned length-n vector of ones.
func Ones[T Element, B Backend[T]](n int, b B) *Vector[T, B] { return vec.Ones[T, B](n, b) }

// Full creates an owned length-n vector filled with value.
func Full[T Element, B Backend[T]](n int, value T, b B) *Vector[T, B] {
	return vec.Full[T, B](n, value, b)
}

// FromSlice copies data into an owned vector.
func FromSlice[T Element, B Backend[T]](data []T, b B) *Vector[T, B] {
	return vec.FromSlice[T, B](data, b)
}

// BorrowVector wraps a caller-owned slice without copying.
func BorrowVector[T Element, B Backend[T]](data []T, b B) *Vector[T, B] {
	return vec.BorrowVector[T, B](data, b)
}

// BorrowVectorRaw wraps n elements at a raw address without copying.
// Unchecked lifetime contract: see BorrowRaw.
func BorrowVectorRaw[T Element, B Backend[T]](ptr unsafe.Pointer, n int, b B) *Vector[T, B] {
	return vec.BorrowVectorRaw[T, B](ptr, n, b)
}

// NewVector wraps an existing Cow by reference; no copy.
func NewVector[T Element, B Backend[T]](c *Cow[T], b B) *Vector[T, B] {
	return vec.NewVector[T, B](c, b)
}

// Matrix and tensor construction.

// NewMatrix builds a rows×cols column-major matrix over an existing Cow,
// zero copy.
func NewMatrix[T Element, B Backend[T]](c *Cow[T], rows, cols int, b B) (*Matrix[T, B], error) {
	return vec.NewMatrix[T, B](c, rows, cols, b)
}

// MatrixFromSlice copies column-major data into an owned rows×cols matrix.
func MatrixFromSlice[T Element, B Backend[T]](data []T, rows, cols int, b B) (*Matrix[T, B], error) {
	return vec.MatrixFromSlice[T, B](data, rows, cols, b)
}

// Eye creates the owned n×n identity matrix.
func Eye[T Element, B Backend[T]](n int, b B) *Matrix[T, B] { return vec.Eye[T, B](n, b) }

// NewTensor wraps an existing Cow under a runtime shape, zero copy.
func NewTensor[T Element, B Backend[T]](c *Cow[T], shape Shape, b B) (*Tensor[T, B], error) {
	return vec.NewTensor[T, B](c, shape, b)
}

// TensorFromSlice copies data into an owned tensor under shape.
func TensorFromSlice[T Element, B Backend[T]](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return vec.TensorFromSlice[T, B](data, shape, b)
}
