// Package nn implements a feed-forward network as a chain of layers, each
// carrying its own hand-derived backward rule.
//
// This package provides building blocks for constructing networks:
//   - Layer interface: Base interface for all chain elements
//   - Input: Holds the externally supplied input column
//   - Weight: Dense weight matrix, sized when linked
//   - Bias: Additive bias vector
//   - Activations: Rectifier, Softplus, Tanh
//   - Network: Owning sequence of layers
//   - MSELoss: Squared-error loss and its output-side error
//
// Training follows a three-phase protocol per batch: ProcessInput and
// ProcessError once per sample, then UpdateParameters once. Parameterized
// layers sum gradients across the samples of a batch and hand the mean to
// their optimizer rule.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	net, err := nn.NewNetwork(
//	    nn.NewInput(2),
//	    nn.NewWeight(3, optim.NewAdam(optim.AdamConfig{}), rng),
//	    nn.NewBias(3, optim.NewAdam(optim.AdamConfig{}), rng),
//	    nn.NewTanh(3),
//	)
package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/layerchain/internal/matrix"
)

// Layer is the base interface for all chain elements.
//
// The set of implementations is closed: Input, Weight, Bias, Rectifier,
// Softplus and Tanh.
type Layer interface {
	// Size returns the number of output units.
	Size() int

	// Output returns the result of the last forward pass. The returned
	// matrix belongs to the layer; Clone it to keep a snapshot.
	Output() *matrix.Matrix

	// OutputError returns the error gradient with respect to Output, as set
	// by the successor or by the last ProcessError call.
	OutputError() *matrix.Matrix

	// Prev returns the predecessor, or nil.
	Prev() Layer

	// Next returns the successor, or nil.
	Next() Layer

	// AppendTo links this layer after prev. A layer may be linked once.
	AppendTo(prev Layer) error

	// Unlink removes the layer from its chain and reconnects its neighbors.
	Unlink()

	// ProcessInput computes Output from the predecessor's output.
	ProcessInput() error

	// ProcessError takes the error gradient with respect to Output,
	// accumulates any parameter gradient, and stores the error with respect
	// to the layer's input as the predecessor's OutputError.
	ProcessError(grad *matrix.Matrix) error

	// UpdateParameters applies the mean accumulated gradient, if any, and
	// resets the accumulator.
	UpdateParameters() error

	// Read loads parameters written by Write.
	Read(r io.Reader) error

	// Write saves parameters as text.
	Write(w io.Writer) error

	base() *node
}

// node holds the chain links and buffers shared by every layer.
// Links are non-owning; the Network owns its layers.
type node struct {
	self Layer
	size int
	prev Layer
	next Layer
	out  *matrix.Matrix
	err  *matrix.Matrix
}

func (n *node) init(self Layer, size int) {
	n.self = self
	n.size = size
	n.out = matrix.New(size, 1)
	n.err = matrix.New(size, 1)
}

func (n *node) base() *node { return n }

// Size returns the number of output units.
func (n *node) Size() int { return n.size }

// Output returns the result of the last forward pass.
func (n *node) Output() *matrix.Matrix { return n.out }

// OutputError returns the error gradient with respect to Output.
func (n *node) OutputError() *matrix.Matrix { return n.err }

// Prev returns the predecessor, or nil.
func (n *node) Prev() Layer { return n.prev }

// Next returns the successor, or nil.
func (n *node) Next() Layer { return n.next }

// Unlink removes the layer from its chain and reconnects its neighbors.
func (n *node) Unlink() {
	if n.prev != nil {
		n.prev.base().next = n.next
	}
	if n.next != nil {
		n.next.base().prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// UpdateParameters is a no-op for layers without parameters.
func (n *node) UpdateParameters() error { return nil }

// Read is a no-op for layers without parameters.
func (n *node) Read(io.Reader) error { return nil }

// Write is a no-op for layers without parameters.
func (n *node) Write(io.Writer) error { return nil }

// link attaches the layer after prev.
func (n *node) link(name string, prev Layer) error {
	if prev == nil {
		return fmt.Errorf("%s: append to nil layer: %w", name, ErrInvalidTopology)
	}
	if n.prev != nil || n.next != nil {
		return fmt.Errorf("%s: already linked: %w", name, ErrInvalidTopology)
	}
	pb := prev.base()
	if pb == n {
		return fmt.Errorf("%s: append to itself: %w", name, ErrInvalidTopology)
	}
	if pb.next != nil {
		return fmt.Errorf("%s: predecessor already has a successor: %w", name, ErrInvalidTopology)
	}
	n.prev = prev
	pb.next = n.self
	return nil
}

// linkSameSize links a layer whose output width equals its input width.
func (n *node) linkSameSize(name string, prev Layer) error {
	if prev != nil && prev.Size() != n.size {
		return fmt.Errorf("%s: size %d after layer of size %d: %w",
			name, n.size, prev.Size(), ErrInvalidTopology)
	}
	return n.link(name, prev)
}

// input returns the predecessor's output.
func (n *node) input(name string) (*matrix.Matrix, error) {
	if n.prev == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingLink)
	}
	return n.prev.base().out, nil
}

// setError stores grad as the error with respect to Output.
func (n *node) setError(name string, grad *matrix.Matrix) error {
	if !grad.Size().Equal(n.out.Size()) {
		return fmt.Errorf("%s: error %v vs output %v: %w",
			name, grad.Size(), n.out.Size(), matrix.ErrShapeMismatch)
	}
	if grad != n.err {
		n.err = grad.Clone()
	}
	return nil
}

// backward validates the link and grad, returning the predecessor's output.
func (n *node) backward(name string, grad *matrix.Matrix) (*matrix.Matrix, error) {
	x, err := n.input(name)
	if err != nil {
		return nil, err
	}
	if err := n.setError(name, grad); err != nil {
		return nil, err
	}
	return x, nil
}

// propagate hands the error with respect to the layer's input to the
// predecessor.
func (n *node) propagate(prevErr *matrix.Matrix) {
	n.prev.base().err = prevErr
}
