// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/layerchain/internal/matrix"
)

// Matrix is a dense 2-D float32 matrix with copy-on-write storage.
type Matrix = matrix.Matrix

// Size holds the dimensions of a matrix.
type Size = matrix.Size

// Errors returned by matrix operations.
var (
	ErrShapeMismatch        = matrix.ErrShapeMismatch
	ErrSingular             = matrix.ErrSingular
	ErrDegenerateConversion = matrix.ErrDegenerateConversion
	ErrIndexOutOfRange      = matrix.ErrIndexOutOfRange
	ErrNegativeDimension    = matrix.ErrNegativeDimension
	ErrTooLarge             = matrix.ErrTooLarge
)

// Construction

// New creates a zero-filled rows×cols matrix.
// A zero dimension yields the empty matrix; a negative one panics.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// NewSize creates a zero-filled matrix of the given size.
func NewSize(sz Size) *Matrix {
	return matrix.NewSize(sz)
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// FromVector creates a column vector.
func FromVector(vec []float32) *Matrix {
	return matrix.FromVector(vec)
}

// Full creates a rows×cols matrix with every element set to v.
func Full(rows, cols int, v float32) *Matrix {
	return matrix.Full(rows, cols, v)
}

// Eye creates the n×n identity matrix.
func Eye(n int) *Matrix {
	return matrix.Eye(n)
}

// Linear algebra

// Solve returns X such that A · X = B, using the normal equations when A is
// not square. It returns the empty matrix when the system cannot be solved.
func Solve(a, b *Matrix) *Matrix {
	return matrix.Solve(a, b)
}

// Element-wise functions

// Min returns the element-wise minimum of a and b.
func Min(a, b *Matrix) (*Matrix, error) { return matrix.Min(a, b) }

// Max returns the element-wise maximum of a and b.
func Max(a, b *Matrix) (*Matrix, error) { return matrix.Max(a, b) }

// MinScalar returns min(m, v) element-wise.
func MinScalar(m *Matrix, v float32) *Matrix { return matrix.MinScalar(m, v) }

// MaxScalar returns max(m, v) element-wise.
func MaxScalar(m *Matrix, v float32) *Matrix { return matrix.MaxScalar(m, v) }

// Abs returns |m| element-wise.
func Abs(m *Matrix) *Matrix { return matrix.Abs(m) }

// Sqrt returns the element-wise square root.
func Sqrt(m *Matrix) *Matrix { return matrix.Sqrt(m) }

// Log returns the element-wise natural logarithm.
func Log(m *Matrix) *Matrix { return matrix.Log(m) }

// Exp returns the element-wise exponential.
func Exp(m *Matrix) *Matrix { return matrix.Exp(m) }

// Tanh returns the element-wise hyperbolic tangent.
func Tanh(m *Matrix) *Matrix { return matrix.Tanh(m) }

// Sigmoid returns the logistic function element-wise, saturating for |x| >= 20.
func Sigmoid(m *Matrix) *Matrix { return matrix.Sigmoid(m) }

// Softplus returns log(1 + exp(x)) element-wise, saturating for |x| >= 20.
func Softplus(m *Matrix) *Matrix { return matrix.Softplus(m) }
