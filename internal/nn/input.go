package nn

import (
	"fmt"

	"github.com/born-ml/layerchain/internal/matrix"
)

// Input holds the externally supplied input column. It starts a chain and
// has no predecessor.
type Input struct {
	node
}

// NewInput creates an input layer of the given width.
func NewInput(size int) *Input {
	l := &Input{}
	l.init(l, size)
	return l
}

// SetInput stores in as the layer's output. in must be a size×1 column.
func (l *Input) SetInput(in *matrix.Matrix) error {
	want := matrix.Size{Rows: l.size, Cols: 1}
	if !in.Size().Equal(want) {
		return fmt.Errorf("input: got %v, want %v: %w", in.Size(), want, matrix.ErrShapeMismatch)
	}
	l.out = in.Clone()
	return nil
}

// AppendTo always fails: an input layer cannot follow another layer.
func (l *Input) AppendTo(Layer) error {
	return fmt.Errorf("input: cannot be appended: %w", ErrInvalidTopology)
}

// ProcessInput does nothing; the output is set by SetInput.
func (l *Input) ProcessInput() error { return nil }

// ProcessError records grad; there is no predecessor to propagate to.
func (l *Input) ProcessError(grad *matrix.Matrix) error {
	return l.setError("input", grad)
}
