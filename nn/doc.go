// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward network built as a chain of layers.
//
// # Overview
//
// This package contains:
//   - Layers: Input, Weight, Bias
//   - Activations: Rectifier, Softplus, Tanh
//   - Network: owning sequence that links layers in order
//   - MSELoss: squared-error loss and its output-side error
//
// Every layer carries its own backward rule; there is no autodiff graph.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/layerchain/matrix"
//	    "github.com/born-ml/layerchain/nn"
//	    "github.com/born-ml/layerchain/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    adam := func() optim.Rule { return optim.NewAdam(optim.AdamConfig{LR: 0.05}) }
//
//	    net, err := nn.NewNetwork(
//	        nn.NewInput(2),
//	        nn.NewWeight(4, adam(), rng),
//	        nn.NewBias(4, adam(), rng),
//	        nn.NewTanh(4),
//	        nn.NewWeight(1, adam(), rng),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    for _, s := range batch {
//	        // 1. Forward pass
//	        _ = net.ProcessInput(s.X)
//
//	        // 2. Loss and backward pass (gradients accumulate)
//	        _, grad, _ := nn.MSELoss(net.Output(), s.Y)
//	        _ = net.ProcessError(grad)
//	    }
//
//	    // 3. One update per batch with the mean gradient
//	    _ = net.UpdateParameters()
//	}
//
// # Persistence
//
// Save and Load write and read the parameters of every layer in chain order
// as text. Load requires a network with the same topology.
package nn
