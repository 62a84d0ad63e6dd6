// Copyright 2026 The slas Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package native provides the BLAS-backed compute backend.
//
// Operations forward to the BLAS implementation registered with gonum's
// blas32/blas64 packages using the standard (data, inc) vector and
// column-major leading-dimension matrix calling convention. The default
// build resolves to gonum's own implementation; building with -tags netlib
// swaps in the cgo CBLAS bindings at init time. Availability is a
// build-time decision, never a per-call runtime error.
//
// Example:
//
//	b := native.New[float32]()
//	x := vec.FromSlice([]float32{1, 2, 3.2}, b)
package native

import (
	internalnative "github.com/lnicola/slas/internal/backend/native"
	"github.com/lnicola/slas/vec"
)

// Backend is the BLAS-backed implementation of vec.Backend.
type Backend[T vec.Element] = internalnative.Backend[T]

// Compile-time check that Backend implements vec.Backend.
var _ vec.Backend[float32] = Backend[float32]{}

// New creates a BLAS-backed backend.
func New[T vec.Element]() Backend[T] {
	return internalnative.New[T]()
}
