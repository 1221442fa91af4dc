package nn

import (
	"fmt"

	"github.com/born-ml/layerchain/internal/matrix"
)

// MSELoss computes Mean Squared Error loss and the error to backpropagate.
//
// Loss = mean((predictions - targets)²)
// Error = predictions - targets
//
// The error omits the constant 2/N factor of the exact derivative.
//
// Example:
//
//	_ = net.ProcessInput(x)
//	loss, grad, err := nn.MSELoss(net.Output(), y)
//	_ = net.ProcessError(grad)
func MSELoss(predictions, targets *matrix.Matrix) (float32, *matrix.Matrix, error) {
	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, nil, fmt.Errorf("mse loss: %w", err)
	}
	if diff.IsEmpty() {
		return 0, diff, nil
	}

	squared, err := diff.MulElem(diff)
	if err != nil {
		return 0, nil, fmt.Errorf("mse loss: %w", err)
	}
	return squared.Sum() / float32(squared.Count()), diff, nil
}
