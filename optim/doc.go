// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the learning rules used by parameterized layers.
//
// # Overview
//
// This package contains:
//   - Adam: Adaptive Moment Estimation with bias correction
//   - AdaMax: Adam variant based on the infinity norm
//   - SGD: Stochastic Gradient Descent with momentum
//   - Rule interface for custom rules
//
// Each parameterized layer owns one rule. At the end of a batch the layer
// hands the rule its parameter matrix and the mean gradient, and the rule
// updates the parameters in place.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/layerchain/nn"
//	    "github.com/born-ml/layerchain/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    net, err := nn.NewNetwork(
//	        nn.NewInput(2),
//	        nn.NewWeight(1, optim.NewAdam(optim.AdamConfig{LR: 0.01}), rng),
//	    )
//	    ...
//	}
//
// # Rules
//
// Adam (Adaptive Moment Estimation):
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float32{0.9, 0.999},
//	    Eps:   1e-8,
//	})
//
// AdaMax:
//
//	rule := optim.NewAdaMax(optim.AdaMaxConfig{
//	    LR:    0.002,
//	    Betas: [2]float32{0.9, 0.999},
//	})
//
// SGD (Stochastic Gradient Descent):
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// Zero-valued config fields take the defaults shown above.
package optim
