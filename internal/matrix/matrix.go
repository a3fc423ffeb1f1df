// Package matrix implements a dense, row-major float32 matrix with value
// semantics.
//
// Every Matrix owns exactly one contiguous buffer of rows*cols elements.
// Operations never alias: arithmetic returns a freshly allocated result and
// leaves its operands untouched, with the exception of the explicitly named
// in-place variants (AddInPlace, TransposeInPlace, VectorizeInPlace).
//
// Errors are returned, never raised. Each error matches one of the sentinel
// kinds declared in errors.go under errors.Is.
//
// Example:
//
//	a, _ := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
//	id, _ := matrix.Identity(2)
//	p, err := a.Mul(id) // p equals a
package matrix

import (
	"fmt"
	"math"
)

// MaxElements bounds the number of elements a single matrix may hold.
const MaxElements = math.MaxInt32

// Matrix is a dense rows×cols matrix of float32 stored in row-major order.
type Matrix struct {
	rows int
	cols int
	data []float32 // len(data) == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Returns ErrInvalidDimensions if rows or cols is not positive, and
// ErrAllocationFailure if rows*cols exceeds MaxElements.
func New(rows, cols int) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if rows > MaxElements/cols {
		return nil, fmt.Errorf("%w: %v exceeds %d elements", ErrAllocationFailure, shape, MaxElements)
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}, nil
}

// Default creates a 1×1 zero matrix.
func Default() *Matrix {
	return &Matrix{rows: 1, cols: 1, data: make([]float32, 1)}
}

// FromSlice creates a rows×cols matrix holding a copy of data, which is
// interpreted in row-major order.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrDataLength, m.Shape(), len(m.data), len(data))
	}
	copy(m.data, data)
	return m, nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// newUnchecked allocates a matrix whose shape is known to be valid.
func newUnchecked(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float32, rows*cols)}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the (rows, cols) pair.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// Len returns the number of elements, rows*cols.
func (m *Matrix) Len() int {
	return len(m.data)
}

// Data returns a copy of the elements in row-major order.
func (m *Matrix) Data() []float32 {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return data
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float32, error) {
	offset, err := m.offset(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[offset], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) error {
	offset, err := m.offset(row, col)
	if err != nil {
		return err
	}
	m.data[offset] = v
	return nil
}

// AtIndex returns the element at linear index i, which addresses
// (i / cols, i % cols).
func (m *Matrix) AtIndex(i int) (float32, error) {
	if err := m.checkIndex(i); err != nil {
		return 0, err
	}
	return m.data[i], nil
}

// SetIndex stores v at linear index i.
func (m *Matrix) SetIndex(i int, v float32) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.data[i] = v
	return nil
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualApprox(other, 0)
}

// EqualApprox reports whether m and other have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float32) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

// String returns a short description of the matrix.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix%v", m.Shape())
}

func (m *Matrix) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) for shape %v", ErrIndexOutOfBounds, row, col, m.Shape())
	}
	return row*m.cols + col, nil
}

func (m *Matrix) checkIndex(i int) error {
	if i < 0 || i >= len(m.data) {
		return fmt.Errorf("%w: index %d for %d elements", ErrIndexOutOfBounds, i, len(m.data))
	}
	return nil
}
