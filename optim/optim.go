// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/layerchain/internal/optim"
)

// Rule interface defines the common interface for all learning rules.
type Rule = optim.Rule

// Config represents the base configuration for rules.
type Config = optim.Config

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam rule.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam rule.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam rule with bias correction.
//
// Example:
//
//	rule := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// AdaMax

// AdaMax represents the AdaMax rule.
type AdaMax = optim.AdaMax

// AdaMaxConfig contains configuration for the AdaMax rule.
type AdaMaxConfig = optim.AdaMaxConfig

// NewAdaMax creates a new AdaMax rule.
func NewAdaMax(config AdaMaxConfig) *AdaMax {
	return optim.NewAdaMax(config)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD rule with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD rule.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD rule.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
