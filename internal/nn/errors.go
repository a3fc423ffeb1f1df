package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Error kinds reported by layers and networks.
var (
	ErrIncompatibleActivationKind = errors.New("incompatible activation kind")
	ErrDivisionByZero             = errors.New("division by zero")
	ErrBiasRowMismatch            = errors.New("bias rows do not match weight rows")
	ErrLayerSizeMismatch          = errors.New("layer matrix size does not fit")
	ErrInvalidTopology            = errors.New("invalid network topology")
)

// LayerError reports a weight or bias matrix that does not fit its layer.
type LayerError struct {
	Layer    int          // 0-indexed layer position
	Param    string       // "weights" or "bias"
	Expected matrix.Shape // Shape required by the topology
	Actual   matrix.Shape // Shape supplied by the caller
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	return fmt.Sprintf("%s: layer %d %s: expected %v, got %v",
		ErrLayerSizeMismatch, e.Layer, e.Param, e.Expected, e.Actual)
}

// Unwrap returns ErrLayerSizeMismatch.
func (e *LayerError) Unwrap() error {
	return ErrLayerSizeMismatch
}
