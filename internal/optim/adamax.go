package optim

import (
	"math"

	"github.com/born-ml/layerchain/internal/matrix"
)

// AdaMax implements the AdaMax learning rule, the infinity-norm variant of
// Adam.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	u_t = max(beta2 * u_{t-1}, |gradient|)
//	param = param - (lr / (1 - beta1^t)) * m_t / u_t
//
// The second moment carries no bias correction and no epsilon. Elements whose
// gradient has been exactly zero on every step have m_t = u_t = 0 and are left
// unchanged.
type AdaMax struct {
	lr    float32
	beta1 float32
	beta2 float32

	t            int
	beta1Decayed float32

	m *matrix.Matrix
	u *matrix.Matrix
}

// AdaMaxConfig holds configuration for the AdaMax rule.
type AdaMaxConfig struct {
	LR    float32    // Learning rate (default: 0.002)
	Betas [2]float32 // Decay of the first moment and of the norm (default: [0.9, 0.999])
}

// NewAdaMax creates a new AdaMax rule, filling zero fields with defaults.
func NewAdaMax(config AdaMaxConfig) *AdaMax {
	if config.LR == 0 {
		config.LR = 0.002
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}

	a := &AdaMax{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
	}
	a.Reset()
	return a
}

// Update performs a single AdaMax step on params.
func (a *AdaMax) Update(params, grads *matrix.Matrix) error {
	if err := checkShapes("adamax", params, grads, a.m); err != nil {
		return err
	}
	if a.m == nil {
		a.m = matrix.NewSize(grads.Size())
		a.u = matrix.NewSize(grads.Size())
	}

	a.t++
	a.beta1Decayed *= a.beta1

	if err := decay(a.m, a.beta1, grads); err != nil {
		return err
	}
	u, err := matrix.Max(a.u.Scale(a.beta2), matrix.Abs(grads))
	if err != nil {
		return err
	}
	a.u = u

	// u is zero only where m is zero too.
	step, err := a.m.DivElem(matrix.MaxScalar(a.u, math.SmallestNonzeroFloat32))
	if err != nil {
		return err
	}
	step.ScaleInPlace(a.lr / (1 - a.beta1Decayed))
	return params.SubInPlace(step)
}

// LR returns the current learning rate.
func (a *AdaMax) LR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *AdaMax) SetLR(lr float32) {
	a.lr = lr
}

// Reset drops the moment estimates; the next Update reshapes them.
func (a *AdaMax) Reset() {
	a.t = 0
	a.beta1Decayed = 1
	a.m = nil
	a.u = nil
}

// Timestep returns the number of updates applied since the last reset.
func (a *AdaMax) Timestep() int {
	return a.t
}
