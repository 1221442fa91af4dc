package optim

import (
	"github.com/born-ml/layerchain/internal/matrix"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	lr       float32
	momentum float32
	t        int
	velocity *matrix.Matrix // nil until the first momentum update
}

// SGDConfig holds configuration for the SGD rule.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD rule.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Update performs a single SGD step on params.
//
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Update(params, grads *matrix.Matrix) error {
	if err := checkShapes("sgd", params, grads, s.velocity); err != nil {
		return err
	}
	s.t++

	if s.momentum == 0 {
		return params.SubInPlace(grads.Scale(s.lr))
	}

	if s.velocity == nil {
		// First step: velocity starts as the gradient itself.
		s.velocity = grads.Clone()
	} else {
		s.velocity.ScaleInPlace(s.momentum)
		if err := s.velocity.AddInPlace(grads); err != nil {
			return err
		}
	}
	return params.SubInPlace(s.velocity.Scale(s.lr))
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

// Reset clears the velocity and the step counter.
func (s *SGD) Reset() {
	s.t = 0
	s.velocity = nil
}

// Timestep returns the number of updates applied since the last reset.
func (s *SGD) Timestep() int {
	return s.t
}
