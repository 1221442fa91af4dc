package matrix

import "github.com/born-ml/layerchain/internal/parallel"

// kernels splits large products by output row.
var kernels = parallel.DefaultConfig()

// mapTo returns a fresh row-major matrix with f applied to every element.
func (m *Matrix) mapTo(f func(x float32) float32) *Matrix {
	res := New(m.rows, m.cols)
	if res.buf == nil {
		return res
	}
	dst := res.buf.data
	i := 0
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			dst[i] = f(m.at(r, c))
			i++
		}
	}
	return res
}

// zipTo returns a fresh matrix with f applied to corresponding elements.
func (m *Matrix) zipTo(op string, o *Matrix, f func(a, b float32) float32) (*Matrix, error) {
	if err := checkSameSize(op, m, o); err != nil {
		return nil, err
	}
	res := New(m.rows, m.cols)
	if res.buf == nil {
		return res, nil
	}
	dst := res.buf.data
	i := 0
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			dst[i] = f(m.at(r, c), o.at(r, c))
			i++
		}
	}
	return res, nil
}

// applyInPlace replaces every element x with f(x).
func (m *Matrix) applyInPlace(f func(x float32) float32) {
	if m.buf == nil {
		return
	}
	m.unique()
	data := m.buf.data
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			i := m.ptr(r, c)
			data[i] = f(data[i])
		}
	}
}

// zipInPlace replaces every element a with f(a, b) where b is the matching
// element of o.
func (m *Matrix) zipInPlace(op string, o *Matrix, f func(a, b float32) float32) error {
	if err := checkSameSize(op, m, o); err != nil {
		return err
	}
	if m.buf == nil {
		return nil
	}
	m.unique()
	data := m.buf.data
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			i := m.ptr(r, c)
			data[i] = f(data[i], o.at(r, c))
		}
	}
	return nil
}

// Add returns m + o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.zipTo("add", o, func(a, b float32) float32 { return a + b })
}

// AddInPlace computes m += o.
func (m *Matrix) AddInPlace(o *Matrix) error {
	return m.zipInPlace("add", o, func(a, b float32) float32 { return a + b })
}

// Sub returns m - o.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	return m.zipTo("sub", o, func(a, b float32) float32 { return a - b })
}

// SubInPlace computes m -= o.
func (m *Matrix) SubInPlace(o *Matrix) error {
	return m.zipInPlace("sub", o, func(a, b float32) float32 { return a - b })
}

// MulElem returns the element-wise product m ⊙ o.
func (m *Matrix) MulElem(o *Matrix) (*Matrix, error) {
	return m.zipTo("elementwise product", o, func(a, b float32) float32 { return a * b })
}

// MulElemInPlace computes m ⊙= o.
func (m *Matrix) MulElemInPlace(o *Matrix) error {
	return m.zipInPlace("elementwise product", o, func(a, b float32) float32 { return a * b })
}

// DivElem returns the element-wise quotient m ⊘ o.
func (m *Matrix) DivElem(o *Matrix) (*Matrix, error) {
	return m.zipTo("elementwise division", o, func(a, b float32) float32 { return a / b })
}

// AddScalar returns m + v.
func (m *Matrix) AddScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return x + v })
}

// AddScalarInPlace computes m += v.
func (m *Matrix) AddScalarInPlace(v float32) {
	m.applyInPlace(func(x float32) float32 { return x + v })
}

// SubScalar returns m - v.
func (m *Matrix) SubScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return x - v })
}

// SubScalarInPlace computes m -= v.
func (m *Matrix) SubScalarInPlace(v float32) {
	m.applyInPlace(func(x float32) float32 { return x - v })
}

// ScalarSub returns v - m.
func (m *Matrix) ScalarSub(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return v - x })
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	return m.mapTo(func(x float32) float32 { return -x })
}

// Scale returns m * v.
func (m *Matrix) Scale(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return x * v })
}

// ScaleInPlace computes m *= v.
func (m *Matrix) ScaleInPlace(v float32) {
	m.applyInPlace(func(x float32) float32 { return x * v })
}

// DivScalar returns m / v.
func (m *Matrix) DivScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return x / v })
}

// DivScalarInPlace computes m /= v.
func (m *Matrix) DivScalarInPlace(v float32) {
	m.applyInPlace(func(x float32) float32 { return x / v })
}

// ScalarDiv returns v / m element-wise.
func (m *Matrix) ScalarDiv(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return v / x })
}

// MatMul returns the matrix product m · o.
// Requires m.Cols() == o.Rows(); the result is m.Rows() × o.Cols().
func (m *Matrix) MatMul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, shapeError("matmul", m.Size(), o.Size())
	}
	res := New(m.rows, o.cols)
	if res.buf == nil {
		return res, nil
	}
	dst := res.buf.data
	parallel.Range(m.rows, m.cols*o.cols, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			row := dst[r*o.cols : (r+1)*o.cols]
			for c := range row {
				var sum float32
				for k := 0; k < m.cols; k++ {
					sum += m.at(r, k) * o.at(k, c)
				}
				row[c] = sum
			}
		}
	}, kernels)
	return res, nil
}
