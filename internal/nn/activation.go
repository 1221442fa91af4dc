package nn

import (
	"github.com/born-ml/layerchain/internal/matrix"
)

// Rectifier is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Backward passes the error through where x > 0 and blocks it elsewhere.
//
// Example:
//
//	relu := nn.NewRectifier(128)
type Rectifier struct {
	node
}

// NewRectifier creates a rectifier layer of the given width.
func NewRectifier(size int) *Rectifier {
	l := &Rectifier{}
	l.init(l, size)
	return l
}

// AppendTo links the layer after prev, which must have the same width.
func (l *Rectifier) AppendTo(prev Layer) error {
	return l.linkSameSize("rectifier", prev)
}

// ProcessInput applies max(x, 0).
func (l *Rectifier) ProcessInput() error {
	x, err := l.input("rectifier")
	if err != nil {
		return err
	}
	l.out = matrix.MaxScalar(x, 0)
	return nil
}

// ProcessError propagates e ⊙ [x > 0].
func (l *Rectifier) ProcessError(grad *matrix.Matrix) error {
	x, err := l.backward("rectifier", grad)
	if err != nil {
		return err
	}
	prevErr, err := x.GreaterScalar(0).MulElem(l.err)
	if err != nil {
		return err
	}
	l.propagate(prevErr)
	return nil
}

// Softplus is a smooth approximation of the rectifier.
//
// Applies the element-wise function: f(x) = log(1 + exp(x))
//
// Its derivative is the logistic sigmoid, so backward propagates
// sigmoid(x) ⊙ e.
type Softplus struct {
	node
}

// NewSoftplus creates a softplus layer of the given width.
func NewSoftplus(size int) *Softplus {
	l := &Softplus{}
	l.init(l, size)
	return l
}

// AppendTo links the layer after prev, which must have the same width.
func (l *Softplus) AppendTo(prev Layer) error {
	return l.linkSameSize("softplus", prev)
}

// ProcessInput applies softplus(x).
func (l *Softplus) ProcessInput() error {
	x, err := l.input("softplus")
	if err != nil {
		return err
	}
	l.out = matrix.Softplus(x)
	return nil
}

// ProcessError propagates sigmoid(x) ⊙ e.
func (l *Softplus) ProcessError(grad *matrix.Matrix) error {
	x, err := l.backward("softplus", grad)
	if err != nil {
		return err
	}
	prevErr, err := matrix.Sigmoid(x).MulElem(l.err)
	if err != nil {
		return err
	}
	l.propagate(prevErr)
	return nil
}

// Tanh is a hyperbolic tangent activation layer.
//
// Applies the element-wise function: f(x) = tanh(x)
//
// Output range: (-1, 1). Backward uses the derivative expressed through the
// output: dy/dx = 1 - y².
type Tanh struct {
	node
}

// NewTanh creates a tanh layer of the given width.
func NewTanh(size int) *Tanh {
	l := &Tanh{}
	l.init(l, size)
	return l
}

// AppendTo links the layer after prev, which must have the same width.
func (l *Tanh) AppendTo(prev Layer) error {
	return l.linkSameSize("tanh", prev)
}

// ProcessInput applies tanh(x).
func (l *Tanh) ProcessInput() error {
	x, err := l.input("tanh")
	if err != nil {
		return err
	}
	l.out = matrix.Tanh(x)
	return nil
}

// ProcessError propagates (1 - y²) ⊙ e, where y is the last output.
func (l *Tanh) ProcessError(grad *matrix.Matrix) error {
	if _, err := l.backward("tanh", grad); err != nil {
		return err
	}
	sq, err := l.out.MulElem(l.out)
	if err != nil {
		return err
	}
	prevErr, err := sq.ScalarSub(1).MulElem(l.err)
	if err != nil {
		return err
	}
	l.propagate(prevErr)
	return nil
}
