package matrix

import (
	"errors"
	"fmt"
)

// Error kinds reported by matrix operations. Every error returned by this
// package matches exactly one of them under errors.Is.
var (
	ErrInvalidDimensions         = errors.New("invalid matrix dimensions")
	ErrAllocationFailure         = errors.New("failed to allocate matrix elements")
	ErrIndexOutOfBounds          = errors.New("index out of bounds")
	ErrDimensionMismatchAdd      = errors.New("cannot add matrices: sizes are unequal")
	ErrDimensionMismatchMultiply = errors.New("cannot multiply matrices: inner dimensions differ")
	ErrDimensionMismatchDot      = errors.New("cannot take elementwise product: sizes are unequal")
	ErrDataLength                = errors.New("data length does not match shape")
	ErrStreamOpenFailure         = errors.New("failed to open stream")
	ErrFileSizeMismatch          = errors.New("stream size does not fit matrix")
)

// ShapeError describes an operation rejected because of its operands' shapes.
type ShapeError struct {
	Op    string // Operation name (e.g., "add", "mul")
	Left  Shape  // Receiver shape
	Right Shape  // Operand shape
	Kind  error  // One of the ErrDimensionMismatch* sentinels
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s %v and %v", e.Kind, e.Op, e.Left, e.Right)
}

// Unwrap returns the error kind.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}
