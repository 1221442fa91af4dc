package nn

import "errors"

// Sentinel errors returned by layers and networks. Shape problems are reported
// with matrix.ErrShapeMismatch.
var (
	// ErrMissingLink indicates a forward or backward pass on a layer that has
	// no predecessor.
	ErrMissingLink = errors.New("layer has no predecessor")

	// ErrInvalidTopology indicates an illegal link: the layer is already
	// linked, the predecessor is absent or already has a successor, the
	// sizes of a size-preserving layer disagree, or an Input layer is being
	// appended.
	ErrInvalidTopology = errors.New("invalid layer topology")
)
