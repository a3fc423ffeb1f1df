package matrix

import (
	"github.com/chewxy/math32"
)

// AddInPlace adds other to m elementwise (m += other).
// Returns ErrDimensionMismatchAdd if the shapes differ; m is left unchanged.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if err := m.sameShape("add", other, ErrDimensionMismatchAdd); err != nil {
		return err
	}
	for i, v := range other.data {
		m.data[i] += v
	}
	return nil
}

// Add returns m + other as a new matrix.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.sameShape("add", other, ErrDimensionMismatchAdd); err != nil {
		return nil, err
	}
	result := m.Clone()
	for i, v := range other.data {
		result.data[i] += v
	}
	return result, nil
}

// Mul returns the matrix product m × other.
//
// (R, K) × (K, C) -> (R, C). Returns ErrDimensionMismatchMultiply when
// m.Cols() != other.Rows().
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, &ShapeError{Op: "mul", Left: m.Shape(), Right: other.Shape(), Kind: ErrDimensionMismatchMultiply}
	}

	r, k, c := m.rows, m.cols, other.cols
	result := newUnchecked(r, c)

	// Naive O(n³) product: C[i,j] = sum_k A[i,k] * B[k,j]
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum := float32(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += m.data[i*k+kIdx] * other.data[kIdx*c+j]
			}
			result.data[i*c+j] = sum
		}
	}

	return result, nil
}

// Scale returns m with every element multiplied by s.
func (m *Matrix) Scale(s float32) *Matrix {
	result := m.Clone()
	for i := range result.data {
		result.data[i] *= s
	}
	return result
}

// ScaleBy returns s × m. It is the scalar-first counterpart of Scale and
// yields the same result.
func ScaleBy(s float32, m *Matrix) *Matrix {
	return m.Scale(s)
}

// Transpose returns the transpose of m: result(j, i) == m(i, j).
func (m *Matrix) Transpose() *Matrix {
	result := newUnchecked(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return result
}

// TransposeInPlace replaces m with its transpose and returns m.
func (m *Matrix) TransposeInPlace() *Matrix {
	t := m.Transpose()
	m.rows, m.cols, m.data = t.rows, t.cols, t.data
	return m
}

// Vectorize returns m reshaped to a (rows*cols)×1 column vector. The
// row-major element order is preserved: v[k] == m(k / cols, k % cols).
func (m *Matrix) Vectorize() *Matrix {
	result := m.Clone()
	result.rows, result.cols = len(result.data), 1
	return result
}

// VectorizeInPlace reshapes m to a column vector and returns m.
func (m *Matrix) VectorizeInPlace() *Matrix {
	m.rows, m.cols = len(m.data), 1
	return m
}

// ElementwiseProduct returns the Hadamard product of m and other:
// result(i, j) == m(i, j) * other(i, j).
//
// Returns ErrDimensionMismatchDot if the shapes differ.
func (m *Matrix) ElementwiseProduct(other *Matrix) (*Matrix, error) {
	if err := m.sameShape("elementwise product", other, ErrDimensionMismatchDot); err != nil {
		return nil, err
	}
	result := m.Clone()
	for i, v := range other.data {
		result.data[i] *= v
	}
	return result, nil
}

// Norm returns the Frobenius norm, sqrt of the sum of squared elements.
func (m *Matrix) Norm() float32 {
	var sum float32
	for _, v := range m.data {
		sum += v * v
	}
	return math32.Sqrt(sum)
}

func (m *Matrix) sameShape(op string, other *Matrix, kind error) error {
	if m.rows != other.rows || m.cols != other.cols {
		return &ShapeError{Op: op, Left: m.Shape(), Right: other.Shape(), Kind: kind}
	}
	return nil
}
