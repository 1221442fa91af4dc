package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrSingular             = errors.New("matrix is not invertible")
	ErrDegenerateConversion = errors.New("degenerate conversion")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrNegativeDimension    = errors.New("negative dimension")
	ErrTooLarge             = errors.New("matrix too large")
)

// shapeError wraps ErrShapeMismatch with the operation and operand sizes.
func shapeError(op string, a, b Size) error {
	return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a, b)
}

// checkSameSize returns a shape error unless a and b have equal extents.
func checkSameSize(op string, a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return shapeError(op, a.Size(), b.Size())
	}
	return nil
}
