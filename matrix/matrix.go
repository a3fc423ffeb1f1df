// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for dense float32 matrices.
//
// A Matrix owns one contiguous row-major buffer and never aliases another
// Matrix. Arithmetic returns new matrices; only AddInPlace,
// TransposeInPlace and VectorizeInPlace modify their receiver.
//
// Example:
//
//	a, _ := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
//	id, _ := matrix.Identity(2)
//	p, err := a.Mul(id) // p equals a
//	if errors.Is(err, matrix.ErrDimensionMismatchMultiply) {
//	    // handle shape error
//	}
package matrix

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense rows×cols float32 matrix in row-major order.
type Matrix = matrix.Matrix

// Shape is the (rows, cols) pair of a matrix.
type Shape = matrix.Shape

// ShapeError describes an operation rejected because of its operands' shapes.
type ShapeError = matrix.ShapeError

// MaxElements bounds the number of elements a single matrix may hold.
const MaxElements = matrix.MaxElements

// Error kinds. Use errors.Is to test for them.
var (
	ErrInvalidDimensions         = matrix.ErrInvalidDimensions
	ErrAllocationFailure         = matrix.ErrAllocationFailure
	ErrIndexOutOfBounds          = matrix.ErrIndexOutOfBounds
	ErrDimensionMismatchAdd      = matrix.ErrDimensionMismatchAdd
	ErrDimensionMismatchMultiply = matrix.ErrDimensionMismatchMultiply
	ErrDimensionMismatchDot      = matrix.ErrDimensionMismatchDot
	ErrDataLength                = matrix.ErrDataLength
	ErrStreamOpenFailure         = matrix.ErrStreamOpenFailure
	ErrFileSizeMismatch          = matrix.ErrFileSizeMismatch
)

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// Default creates a 1×1 zero matrix.
func Default() *Matrix {
	return matrix.Default()
}

// FromSlice creates a rows×cols matrix holding a copy of data.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return matrix.Identity(n)
}

// ScaleBy returns s × m.
func ScaleBy(s float32, m *Matrix) *Matrix {
	return matrix.ScaleBy(s, m)
}
