package matrix

import "fmt"

// Shape is the (rows, cols) pair of a matrix.
type Shape struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d (must be > 0)", ErrInvalidDimensions, s.Rows, s.Cols)
	}
	return nil
}

// Transposed returns the shape with rows and cols swapped.
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// String renders the shape as "(rows,cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d,%d)", s.Rows, s.Cols)
}
