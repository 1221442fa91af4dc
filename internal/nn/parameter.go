package nn

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/born-ml/layerchain/internal/optim"
)

// parameter is a trainable matrix together with its batch gradient
// accumulator and the rule that updates it.
type parameter struct {
	name  string         // Owning layer kind, used in error messages
	value *matrix.Matrix // The parameter matrix
	grad  *matrix.Matrix // Sum of per-sample gradients in the current batch
	count int            // Samples accumulated in the current batch
	rule  optim.Rule
}

// newParameter creates an empty parameter. A nil rule defaults to Adam.
func newParameter(name string, rule optim.Rule) parameter {
	if rule == nil {
		rule = optim.NewAdam(optim.AdamConfig{})
	}
	return parameter{
		name:  name,
		value: &matrix.Matrix{},
		grad:  &matrix.Matrix{},
		rule:  rule,
	}
}

// reset sizes the parameter to rows×cols, draws values uniformly from
// [-1, 1) and clears the accumulator and the rule's state.
func (p *parameter) reset(rows, cols int, rng *rand.Rand) {
	p.value = matrix.New(rows, cols)
	p.value.Rand(rng, -1, 1)
	p.grad = matrix.New(rows, cols)
	p.count = 0
	p.rule.Reset()
}

// accumulate adds one sample's gradient.
func (p *parameter) accumulate(g *matrix.Matrix) error {
	if err := p.grad.AddInPlace(g); err != nil {
		return fmt.Errorf("%s: accumulate gradient: %w", p.name, err)
	}
	p.count++
	return nil
}

// update hands the mean gradient to the rule when at least one sample was
// accumulated, then resets the accumulator either way.
func (p *parameter) update() error {
	var err error
	if p.count > 0 {
		err = p.rule.Update(p.value, p.grad.DivScalar(float32(p.count)))
	}
	p.grad.Clear()
	p.count = 0
	if err != nil {
		return fmt.Errorf("%s: update: %w", p.name, err)
	}
	return nil
}

// read replaces the value with one decoded from r. A non-empty value keeps
// its shape: a stream holding another shape fails with ErrShapeMismatch.
func (p *parameter) read(r io.Reader) error {
	var m matrix.Matrix
	if err := m.Decode(r); err != nil {
		return fmt.Errorf("%s: read: %w", p.name, err)
	}
	if !p.value.IsEmpty() && !m.Size().Equal(p.value.Size()) {
		return fmt.Errorf("%s: read %v into %v: %w",
			p.name, m.Size(), p.value.Size(), matrix.ErrShapeMismatch)
	}
	p.value = &m
	p.grad = matrix.NewSize(m.Size())
	p.count = 0
	return nil
}

func (p *parameter) write(w io.Writer) error {
	if err := p.value.Encode(w); err != nil {
		return fmt.Errorf("%s: write: %w", p.name, err)
	}
	return nil
}
