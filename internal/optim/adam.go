package optim

import (
	"github.com/born-ml/layerchain/internal/matrix"
)

// Adam implements the Adam (Adaptive Moment Estimation) learning rule.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float32{0.9, 0.999},
//	    Eps:   1e-8,
//	})
type Adam struct {
	lr    float32
	beta1 float32
	beta2 float32
	eps   float32

	t            int     // Timestep for bias correction
	beta1Decayed float32 // beta1^t
	beta2Decayed float32 // beta2^t

	m *matrix.Matrix // First moment estimates, nil until the first update
	v *matrix.Matrix // Second moment estimates
}

// AdamConfig holds configuration for the Adam rule.
type AdamConfig struct {
	LR    float32    // Learning rate (default: 0.001)
	Betas [2]float32 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float32    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam rule.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	a := &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
	a.Reset()
	return a
}

// Update performs a single Adam step on params.
func (a *Adam) Update(params, grads *matrix.Matrix) error {
	if err := checkShapes("adam", params, grads, a.m); err != nil {
		return err
	}
	if a.m == nil {
		a.m = matrix.NewSize(grads.Size())
		a.v = matrix.NewSize(grads.Size())
	}

	a.t++
	a.beta1Decayed *= a.beta1
	a.beta2Decayed *= a.beta2

	if err := decay(a.m, a.beta1, grads); err != nil {
		return err
	}
	sq, err := grads.MulElem(grads)
	if err != nil {
		return err
	}
	if err := decay(a.v, a.beta2, sq); err != nil {
		return err
	}

	mHat := a.m.DivScalar(1 - a.beta1Decayed)
	vHat := a.v.DivScalar(1 - a.beta2Decayed)
	step, err := mHat.DivElem(matrix.Sqrt(vHat).AddScalar(a.eps))
	if err != nil {
		return err
	}
	step.ScaleInPlace(a.lr)
	return params.SubInPlace(step)
}

// LR returns the current learning rate.
func (a *Adam) LR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam) SetLR(lr float32) {
	a.lr = lr
}

// Reset drops the moment estimates; the next Update reshapes them.
func (a *Adam) Reset() {
	a.t = 0
	a.beta1Decayed = 1
	a.beta2Decayed = 1
	a.m = nil
	a.v = nil
}

// Timestep returns the current timestep.
//
// Useful for monitoring optimizer state.
func (a *Adam) Timestep() int {
	return a.t
}
