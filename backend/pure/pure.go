// Copyright 2026 The slas Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pure provides the pure Go compute backend.
//
// Every contract operation runs as in-process loops over slices, with no
// external math library. Use it as the baseline backend, or to cross-check
// the native backend's results.
//
// Example:
//
//	b := pure.New[float64]()
//	x := vec.FromSlice([]float64{1, 2, 3.2}, b)
package pure

import (
	internalpure "github.com/lnicola/slas/internal/backend/pure"
	"github.com/lnicola/slas/vec"
)

// Backend is the pure Go implementation of vec.Backend.
type Backend[T vec.Element] = internalpure.Backend[T]

// Compile-time check that Backend implements vec.Backend.
var _ vec.Backend[float64] = Backend[float64]{}

// New creates a pure Go backend.
func New[T vec.Element]() Backend[T] {
	return internalpure.New[T]()
}
