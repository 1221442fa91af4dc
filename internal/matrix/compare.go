package matrix

import "github.com/chewxy/math32"

// boolf converts a predicate result to {0, 1}.
func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Greater returns a {0,1} matrix with 1 where m > o.
func (m *Matrix) Greater(o *Matrix) (*Matrix, error) {
	return m.zipTo("greater", o, func(a, b float32) float32 { return boolf(a > b) })
}

// GreaterEqual returns a {0,1} matrix with 1 where m >= o.
func (m *Matrix) GreaterEqual(o *Matrix) (*Matrix, error) {
	return m.zipTo("greater equal", o, func(a, b float32) float32 { return boolf(a >= b) })
}

// Less returns a {0,1} matrix with 1 where m < o.
func (m *Matrix) Less(o *Matrix) (*Matrix, error) {
	return m.zipTo("less", o, func(a, b float32) float32 { return boolf(a < b) })
}

// LessEqual returns a {0,1} matrix with 1 where m <= o.
func (m *Matrix) LessEqual(o *Matrix) (*Matrix, error) {
	return m.zipTo("less equal", o, func(a, b float32) float32 { return boolf(a <= b) })
}

// Equal returns a {0,1} matrix with 1 where m == o.
func (m *Matrix) Equal(o *Matrix) (*Matrix, error) {
	return m.zipTo("equal", o, func(a, b float32) float32 { return boolf(a == b) })
}

// NotEqual returns a {0,1} matrix with 1 where m != o.
func (m *Matrix) NotEqual(o *Matrix) (*Matrix, error) {
	return m.zipTo("not equal", o, func(a, b float32) float32 { return boolf(a != b) })
}

// GreaterScalar returns a {0,1} matrix with 1 where m > v.
func (m *Matrix) GreaterScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x > v) })
}

// GreaterEqualScalar returns a {0,1} matrix with 1 where m >= v.
func (m *Matrix) GreaterEqualScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x >= v) })
}

// LessScalar returns a {0,1} matrix with 1 where m < v.
func (m *Matrix) LessScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x < v) })
}

// LessEqualScalar returns a {0,1} matrix with 1 where m <= v.
func (m *Matrix) LessEqualScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x <= v) })
}

// EqualScalar returns a {0,1} matrix with 1 where m == v.
func (m *Matrix) EqualScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x == v) })
}

// NotEqualScalar returns a {0,1} matrix with 1 where m != v.
func (m *Matrix) NotEqualScalar(v float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x != v) })
}

// IsBetween returns a {0,1} matrix with 1 where lo < m < hi.
func (m *Matrix) IsBetween(lo, hi float32) *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(x > lo && x < hi) })
}

// IsNaN returns a {0,1} matrix with 1 where m is NaN.
func (m *Matrix) IsNaN() *Matrix {
	return m.mapTo(func(x float32) float32 { return boolf(math32.IsNaN(x)) })
}
