// Package optim implements the learning rules that turn an averaged gradient
// into a parameter update.
//
// This package provides:
//   - Rule interface: Base interface for all learning rules
//   - Adam: Adaptive Moment Estimation
//   - AdaMax: Adam variant based on the infinity norm
//   - SGD: Stochastic Gradient Descent with momentum
//
// A rule is owned by exactly one parameterized layer and keeps its moment
// state for that layer's parameter matrix only. The shape of that state is
// fixed by the first update.
//
// Example usage:
//
//	rule := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	weight := nn.NewWeight(3, rule, rng)
//
//	// After a batch the layer hands the mean gradient to its rule:
//	//   rule.Update(weights, meanGrad)
package optim

import (
	"fmt"

	"github.com/born-ml/layerchain/internal/matrix"
)

// Rule is the base interface for all learning rules.
//
// All rules must implement:
//   - Update: Apply one step to params given the averaged gradient
//   - LR/SetLR: Inspect and change the learning rate (for scheduling)
//   - Reset: Drop accumulated state so the next Update starts fresh
type Rule interface {
	// Update mutates params in place using grads, the mean gradient of
	// the last batch.
	//
	// Fails with matrix.ErrShapeMismatch when params and grads differ in
	// shape, or when grads no longer match the shape of the rule's state.
	Update(params, grads *matrix.Matrix) error

	// LR returns the current learning rate.
	LR() float32

	// SetLR updates the learning rate.
	SetLR(lr float32)

	// Reset clears moment estimates and the step counter.
	Reset()
}

// Config is the base configuration for all rules.
type Config struct {
	LR float32 // Learning rate
}

// checkShapes verifies params against grads, and grads against state when
// state has already been shaped.
func checkShapes(name string, params, grads, state *matrix.Matrix) error {
	if !params.Size().Equal(grads.Size()) {
		return fmt.Errorf("%s: %w: params %v vs grads %v",
			name, matrix.ErrShapeMismatch, params.Size(), grads.Size())
	}
	if state != nil && !state.Size().Equal(grads.Size()) {
		return fmt.Errorf("%s: %w: state %v vs grads %v",
			name, matrix.ErrShapeMismatch, state.Size(), grads.Size())
	}
	return nil
}

// decay computes acc = beta*acc + (1-beta)*x in place.
func decay(acc *matrix.Matrix, beta float32, x *matrix.Matrix) error {
	acc.ScaleInPlace(beta)
	return acc.AddInPlace(x.Scale(1 - beta))
}
