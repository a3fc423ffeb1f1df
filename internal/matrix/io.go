package matrix

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
)

// renderThreshold is the value above which Render draws a cell as "**".
const renderThreshold = 0.1

// ReadFrom fills m from r, which must supply exactly rows*cols*4 bytes of
// little-endian IEEE-754 float32 values in row-major order.
//
// Returns ErrStreamOpenFailure if r is nil or fails, and ErrFileSizeMismatch
// if the stream holds any other number of bytes. On error m is unchanged.
// ReadFrom implements io.ReaderFrom.
func (m *Matrix) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: nil reader", ErrStreamOpenFailure)
	}

	want := int64(len(m.data)) * 4

	// Read one byte past the expected size so oversized streams are detected
	// without consuming them entirely.
	buf, err := io.ReadAll(io.LimitReader(r, want+1))
	n := int64(len(buf))
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrStreamOpenFailure, err)
	}
	if n != want {
		return n, fmt.Errorf("%w: matrix %v needs %d bytes, stream has %s",
			ErrFileSizeMismatch, m.Shape(), want, sizeDescription(n, want))
	}

	for i := range m.data {
		m.data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return n, nil
}

func sizeDescription(n, want int64) string {
	if n > want {
		return "more"
	}
	return strconv.FormatInt(n, 10)
}

// WriteTo encodes m to w in the format ReadFrom accepts.
// WriteTo implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, len(m.data)*4)
	for i, v := range m.data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write matrix %v: %w", m.Shape(), err)
	}
	return int64(n), nil
}

// Render draws m as text art: "**" for every element above 0.1 and two
// spaces otherwise, one line per row.
//
// Row 0 and column 0 are not drawn.
func (m *Matrix) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			if float64(m.data[i*m.cols+j]) > renderThreshold {
				_, _ = bw.WriteString("**")
			} else {
				_, _ = bw.WriteString("  ")
			}
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePlain writes every row's values separated by single spaces, one line
// per row, followed by an empty line.
func (m *Matrix) WritePlain(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(strconv.FormatFloat(float64(m.data[i*m.cols+j]), 'g', -1, 32))
		}
		_ = bw.WriteByte('\n')
	}
	_ = bw.WriteByte('\n')
	return bw.Flush()
}
