// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/born-ml/layerchain/internal/nn"
	"github.com/born-ml/layerchain/internal/optim"
)

// Layer interface defines the common interface for all chain elements.
type Layer = nn.Layer

// Errors returned by layers and networks.
var (
	ErrMissingLink     = nn.ErrMissingLink
	ErrInvalidTopology = nn.ErrInvalidTopology
)

// Layers

// Input holds the externally supplied input column.
type Input = nn.Input

// NewInput creates an input layer of the given width.
func NewInput(size int) *Input {
	return nn.NewInput(size)
}

// Weight represents a dense layer without bias.
type Weight = nn.Weight

// NewWeight creates a dense layer with size outputs. The weight matrix is
// sized and drawn from rng when the layer is linked.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewWeight(128, optim.NewAdam(optim.AdamConfig{}), rng)
func NewWeight(size int, rule optim.Rule, rng *rand.Rand) *Weight {
	return nn.NewWeight(size, rule, rng)
}

// Bias represents an additive bias layer.
type Bias = nn.Bias

// NewBias creates a bias layer of the given width.
func NewBias(size int, rule optim.Rule, rng *rand.Rand) *Bias {
	return nn.NewBias(size, rule, rng)
}

// Activations

// Rectifier represents the ReLU activation layer.
type Rectifier = nn.Rectifier

// NewRectifier creates a rectifier layer of the given width.
func NewRectifier(size int) *Rectifier {
	return nn.NewRectifier(size)
}

// Softplus represents the softplus activation layer.
type Softplus = nn.Softplus

// NewSoftplus creates a softplus layer of the given width.
func NewSoftplus(size int) *Softplus {
	return nn.NewSoftplus(size)
}

// Tanh represents the hyperbolic tangent activation layer.
type Tanh = nn.Tanh

// NewTanh creates a tanh layer of the given width.
func NewTanh(size int) *Tanh {
	return nn.NewTanh(size)
}

// Containers

// Network represents an owning chain of layers.
type Network = nn.Network

// NewNetwork creates a network and links the layers in order.
func NewNetwork(layers ...Layer) (*Network, error) {
	return nn.NewNetwork(layers...)
}

// Loss functions

// MSELoss returns the mean squared error of predictions against targets and
// the error (predictions - targets) to feed to Network.ProcessError.
func MSELoss(predictions, targets *matrix.Matrix) (float32, *matrix.Matrix, error) {
	return nn.MSELoss(predictions, targets)
}
