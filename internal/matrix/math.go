package matrix

import "github.com/chewxy/math32"

// saturation is the input magnitude beyond which Sigmoid and Softplus return
// their limiting values instead of evaluating exp.
const saturation = 20

// Min returns the element-wise minimum of a and b.
func Min(a, b *Matrix) (*Matrix, error) {
	return a.zipTo("min", b, func(x, y float32) float32 {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the element-wise maximum of a and b.
func Max(a, b *Matrix) (*Matrix, error) {
	return a.zipTo("max", b, func(x, y float32) float32 {
		if x > y {
			return x
		}
		return y
	})
}

// MinScalar returns min(m, v) element-wise.
func MinScalar(m *Matrix, v float32) *Matrix {
	return m.mapTo(func(x float32) float32 {
		if x < v {
			return x
		}
		return v
	})
}

// MaxScalar returns max(m, v) element-wise.
func MaxScalar(m *Matrix, v float32) *Matrix {
	return m.mapTo(func(x float32) float32 {
		if x > v {
			return x
		}
		return v
	})
}

// Abs returns |m| element-wise.
func Abs(m *Matrix) *Matrix {
	return m.mapTo(math32.Abs)
}

// Sqrt returns the element-wise square root.
func Sqrt(m *Matrix) *Matrix {
	return m.mapTo(math32.Sqrt)
}

// Log returns the element-wise natural logarithm.
func Log(m *Matrix) *Matrix {
	return m.mapTo(math32.Log)
}

// Exp returns the element-wise exponential.
func Exp(m *Matrix) *Matrix {
	return m.mapTo(math32.Exp)
}

// Tanh returns the element-wise hyperbolic tangent.
func Tanh(m *Matrix) *Matrix {
	return m.mapTo(math32.Tanh)
}

// Sigmoid returns 1 / (1 + exp(-x)) element-wise, saturating to 1 and 0 for
// |x| >= 20.
func Sigmoid(m *Matrix) *Matrix {
	return m.mapTo(sigmoid)
}

// Softplus returns log(1 + exp(x)) element-wise, saturating to x and 0 for
// |x| >= 20.
func Softplus(m *Matrix) *Matrix {
	return m.mapTo(softplus)
}

func sigmoid(x float32) float32 {
	switch {
	case x >= saturation:
		return 1
	case x <= -saturation:
		return 0
	default:
		return 1 / (1 + math32.Exp(-x))
	}
}

func softplus(x float32) float32 {
	switch {
	case x >= saturation:
		return x
	case x <= -saturation:
		return 0
	default:
		return math32.Log(math32.Exp(x) + 1)
	}
}
