package nn

import (
	"io"
	"math/rand"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/born-ml/layerchain/internal/optim"
)

// Weight implements a dense layer without bias.
//
// Performs the transformation: y = W · x
// where:
//   - x is the predecessor's output with shape [in, 1]
//   - W is the weight matrix with shape [size, in]
//   - y is the output with shape [size, 1]
//
// The input width is unknown until the layer is linked; AppendTo sizes W and
// draws it uniformly from [-1, 1).
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	w := nn.NewWeight(128, optim.NewAdam(optim.AdamConfig{}), rng)
//	if err := w.AppendTo(input); err != nil { ... }
type Weight struct {
	node
	param parameter
	rng   *rand.Rand
}

// NewWeight creates a dense layer with size outputs, updated by rule.
// rng supplies initial weights; nil uses the global source.
func NewWeight(size int, rule optim.Rule, rng *rand.Rand) *Weight {
	l := &Weight{
		param: newParameter("weight", rule),
		rng:   rng,
	}
	l.init(l, size)
	return l
}

// AppendTo links the layer after prev and re-initializes W as size × prev.Size().
func (l *Weight) AppendTo(prev Layer) error {
	if err := l.link("weight", prev); err != nil {
		return err
	}
	l.param.reset(l.size, prev.Size(), l.rng)
	return nil
}

// ProcessInput computes W · x.
func (l *Weight) ProcessInput() error {
	x, err := l.input("weight")
	if err != nil {
		return err
	}
	out, err := l.param.value.MatMul(x)
	if err != nil {
		return err
	}
	l.out = out
	return nil
}

// ProcessError accumulates e · xᵗ and propagates Wᵗ · e.
func (l *Weight) ProcessError(grad *matrix.Matrix) error {
	x, err := l.backward("weight", grad)
	if err != nil {
		return err
	}

	xt := x.T()
	g, err := l.err.MatMul(xt)
	xt.Release()
	if err != nil {
		return err
	}

	wt := l.param.value.T()
	prevErr, err := wt.MatMul(l.err)
	wt.Release()
	if err != nil {
		return err
	}

	if err := l.param.accumulate(g); err != nil {
		return err
	}
	l.propagate(prevErr)
	return nil
}

// UpdateParameters applies the mean gradient of the batch.
func (l *Weight) UpdateParameters() error {
	return l.param.update()
}

// Read loads W from r.
func (l *Weight) Read(r io.Reader) error {
	return l.param.read(r)
}

// Write saves W to w.
func (l *Weight) Write(w io.Writer) error {
	return l.param.write(w)
}

// Weights returns the weight matrix. It is empty until the layer is linked.
func (l *Weight) Weights() *matrix.Matrix {
	return l.param.value
}

// Gradient returns the gradient accumulated in the current batch.
func (l *Weight) Gradient() *matrix.Matrix {
	return l.param.grad
}

// Rule returns the optimizer rule that updates W.
func (l *Weight) Rule() optim.Rule {
	return l.param.rule
}

// BatchCount returns the number of samples accumulated in the current batch.
func (l *Weight) BatchCount() int {
	return l.param.count
}
