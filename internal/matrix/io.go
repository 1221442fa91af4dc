package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes m as text: "rows\tcols" on the first line, then one line per
// row with tab-separated values.
func (m *Matrix) Encode(w io.Writer) error {
	_, err := m.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo using the Encode text layout.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteByte('\t')
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteByte('\n')
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(float64(m.at(r, c)), 'g', -1, 32))
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Decode reads a matrix in the Encode layout and replaces m's contents and
// dimensions with it. Any whitespace separates tokens.
//
// When several matrices are decoded from one stream, r should implement
// io.RuneScanner (for example *bufio.Reader); otherwise Decode wraps it in a
// buffered reader and may consume input past the matrix.
func (m *Matrix) Decode(r io.Reader) error {
	var rs io.Reader = r
	if _, ok := r.(io.RuneScanner); !ok {
		rs = bufio.NewReader(r)
	}

	var rows, cols int
	if _, err := fmt.Fscan(rs, &rows, &cols); err != nil {
		return fmt.Errorf("decode: reading dimensions: %w", err)
	}
	if err := checkDims(rows, cols); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	res := New(rows, cols)
	if res.buf != nil {
		for i := range res.buf.data {
			if _, err := fmt.Fscan(rs, &res.buf.data[i]); err != nil {
				return fmt.Errorf("decode: reading element %d of %dx%d: %w", i, rows, cols, err)
			}
		}
	}

	m.Release()
	*m = *res
	return nil
}
