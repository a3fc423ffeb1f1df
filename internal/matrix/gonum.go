package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToDense converts m to a gonum float64 matrix.
func (m *Matrix) ToDense() *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense converts any gonum matrix to a Matrix, narrowing each element
// to float32.
func FromDense(d mat.Matrix) (*Matrix, error) {
	rows, cols := d.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = float32(d.At(i, j))
		}
	}
	return m, nil
}
