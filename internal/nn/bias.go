package nn

import (
	"io"
	"math/rand"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/born-ml/layerchain/internal/optim"
)

// Bias adds a trainable vector to its input: y = x + b.
//
// The bias has shape [size, 1] and is drawn uniformly from [-1, 1) at
// construction. The predecessor must have the same width.
type Bias struct {
	node
	param parameter
}

// NewBias creates a bias layer of the given width, updated by rule.
// rng supplies initial values; nil uses the global source.
func NewBias(size int, rule optim.Rule, rng *rand.Rand) *Bias {
	l := &Bias{param: newParameter("bias", rule)}
	l.init(l, size)
	l.param.reset(size, 1, rng)
	return l
}

// AppendTo links the layer after prev, which must have the same width.
func (l *Bias) AppendTo(prev Layer) error {
	return l.linkSameSize("bias", prev)
}

// ProcessInput computes x + b.
func (l *Bias) ProcessInput() error {
	x, err := l.input("bias")
	if err != nil {
		return err
	}
	out, err := x.Add(l.param.value)
	if err != nil {
		return err
	}
	l.out = out
	return nil
}

// ProcessError accumulates e and passes it through unchanged.
func (l *Bias) ProcessError(grad *matrix.Matrix) error {
	if _, err := l.backward("bias", grad); err != nil {
		return err
	}
	if err := l.param.accumulate(l.err); err != nil {
		return err
	}
	l.propagate(l.err.Clone())
	return nil
}

// UpdateParameters applies the mean gradient of the batch.
func (l *Bias) UpdateParameters() error {
	return l.param.update()
}

// Read loads b from r. The stream must hold a size×1 matrix.
func (l *Bias) Read(r io.Reader) error {
	return l.param.read(r)
}

// Write saves b to w.
func (l *Bias) Write(w io.Writer) error {
	return l.param.write(w)
}

// Bias returns the bias vector.
func (l *Bias) Bias() *matrix.Matrix {
	return l.param.value
}

// Gradient returns the gradient accumulated in the current batch.
func (l *Bias) Gradient() *matrix.Matrix {
	return l.param.grad
}

// Rule returns the optimizer rule that updates b.
func (l *Bias) Rule() optim.Rule {
	return l.param.rule
}

// BatchCount returns the number of samples accumulated in the current batch.
func (l *Bias) BatchCount() int {
	return l.param.count
}
