package nn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/layerchain/internal/matrix"
)

// Network is an ordered sequence of layers that owns the chain topology.
//
// Adding a layer links it after the current last layer, so each layer's
// output becomes the next layer's input.
//
// Example:
//
//	net, err := nn.NewNetwork(
//	    nn.NewInput(2),
//	    nn.NewWeight(3, optim.NewAdam(optim.AdamConfig{}), rng),
//	    nn.NewTanh(3),
//	)
//
//	for _, sample := range batch {
//	    _ = net.ProcessInput(sample.X)
//	    _, grad, _ := nn.MSELoss(net.Output(), sample.Y)
//	    _ = net.ProcessError(grad)
//	}
//	_ = net.UpdateParameters()
type Network struct {
	layers []Layer
}

// NewNetwork creates a network and adds layers in order.
func NewNetwork(layers ...Layer) (*Network, error) {
	n := &Network{}
	for _, l := range layers {
		if err := n.Add(l); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Add appends a layer, linking it after the current last layer.
//
// This allows building networks incrementally:
//
//	net, _ := nn.NewNetwork()
//	_ = net.Add(nn.NewInput(784))
//	_ = net.Add(nn.NewWeight(128, rule, rng))
func (n *Network) Add(l Layer) error {
	if l == nil {
		return fmt.Errorf("add layer %d: nil layer: %w", len(n.layers), ErrInvalidTopology)
	}
	if len(n.layers) == 0 {
		if l.Prev() != nil || l.Next() != nil {
			return fmt.Errorf("add layer 0: already linked: %w", ErrInvalidTopology)
		}
	} else if err := l.AppendTo(n.layers[len(n.layers)-1]); err != nil {
		return fmt.Errorf("add layer %d: %w", len(n.layers), err)
	}
	n.layers = append(n.layers, l)
	return nil
}

// Layers returns the layers in chain order.
func (n *Network) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	copy(out, n.layers)
	return out
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// Output returns the last layer's output, or the empty matrix when the
// network has no layers.
func (n *Network) Output() *matrix.Matrix {
	if len(n.layers) == 0 {
		return &matrix.Matrix{}
	}
	return n.layers[len(n.layers)-1].Output()
}

// ProcessInput loads in as the first layer's output and runs every layer
// forward. in must be a column matching the first layer's width.
func (n *Network) ProcessInput(in *matrix.Matrix) error {
	if len(n.layers) == 0 {
		return nil
	}

	first := n.layers[0].base()
	want := matrix.Size{Rows: first.size, Cols: 1}
	if !in.Size().Equal(want) {
		return fmt.Errorf("process input: got %v, want %v: %w", in.Size(), want, matrix.ErrShapeMismatch)
	}
	first.out = in.Clone()

	for i, l := range n.layers {
		if err := l.ProcessInput(); err != nil {
			return fmt.Errorf("process input: layer %d: %w", i, err)
		}
	}
	return nil
}

// ProcessError backpropagates outErr, the error with respect to the network
// output, from the last layer to the first. Call once per sample.
func (n *Network) ProcessError(outErr *matrix.Matrix) error {
	if len(n.layers) == 0 {
		return nil
	}

	grad := outErr
	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		if i < len(n.layers)-1 {
			grad = l.OutputError()
		}
		if err := l.ProcessError(grad); err != nil {
			return fmt.Errorf("process error: layer %d: %w", i, err)
		}
	}
	return nil
}

// UpdateParameters updates every layer from the last to the first. Call once
// per batch.
func (n *Network) UpdateParameters() error {
	for i := len(n.layers) - 1; i >= 0; i-- {
		if err := n.layers[i].UpdateParameters(); err != nil {
			return fmt.Errorf("update parameters: layer %d: %w", i, err)
		}
	}
	return nil
}

// Save writes the parameters of every layer, in chain order, to w.
func (n *Network) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, l := range n.layers {
		if err := l.Write(bw); err != nil {
			return fmt.Errorf("save: layer %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Load reads parameters written by Save. The network must already have the
// topology the parameters were saved from.
func (n *Network) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for i, l := range n.layers {
		if err := l.Read(br); err != nil {
			return fmt.Errorf("load: layer %d: %w", i, err)
		}
	}
	return nil
}

// SaveFile writes the parameters to the named file, replacing it.
func (n *Network) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return n.Save(f)
}

// LoadFile reads parameters from the named file.
func (n *Network) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	return n.Load(f)
}

// Clear unlinks and drops every layer.
func (n *Network) Clear() {
	for _, l := range n.layers {
		l.Unlink()
	}
	n.layers = nil
}
