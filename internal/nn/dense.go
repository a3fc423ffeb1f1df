package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Dense implements a fully connected layer followed by an activation.
//
// Performs the transformation: y = act(W × x + b)
// where:
//   - W is the weight matrix with shape [out, in]
//   - x is the input column vector with shape [in, 1]
//   - b is the bias column vector with shape [out, 1]
//   - y is the output column vector with shape [out, 1]
//
// A Dense layer owns copies of its parameters and never changes after
// construction, so it is safe for concurrent use.
//
// Example:
//
//	w, _ := matrix.Identity(2)
//	b, _ := matrix.New(2, 1)
//	layer, err := nn.NewDense(w, b, nn.ReLU)
//	out, err := layer.Forward(x)
type Dense struct {
	weights    *matrix.Matrix // [out, in]
	bias       *matrix.Matrix // [out, 1]
	activation Activation
}

// NewDense creates a Dense layer from deep copies of weights and bias.
//
// Returns ErrBiasRowMismatch if bias and weights have a different number of
// rows, and ErrIncompatibleActivationKind if kind is unknown.
func NewDense(weights, bias *matrix.Matrix, kind Kind) (*Dense, error) {
	if bias.Rows() != weights.Rows() {
		return nil, fmt.Errorf("%w: weights %v, bias %v", ErrBiasRowMismatch, weights.Shape(), bias.Shape())
	}

	act, err := NewActivation(kind)
	if err != nil {
		return nil, err
	}

	return &Dense{
		weights:    weights.Clone(),
		bias:       bias.Clone(),
		activation: act,
	}, nil
}

// Forward computes act(W × input + b).
//
// input must have W.Cols() rows. Shape errors from the underlying matrix
// operations are returned wrapped.
func (d *Dense) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	z, err := d.weights.Mul(input)
	if err != nil {
		return nil, fmt.Errorf("dense forward: %w", err)
	}
	if err := z.AddInPlace(d.bias); err != nil {
		return nil, fmt.Errorf("dense forward: %w", err)
	}

	out, err := d.activation.Apply(z)
	if err != nil {
		return nil, fmt.Errorf("dense forward: %w", err)
	}
	return out, nil
}

// Weights returns a copy of the weight matrix.
func (d *Dense) Weights() *matrix.Matrix {
	return d.weights.Clone()
}

// Bias returns a copy of the bias vector.
func (d *Dense) Bias() *matrix.Matrix {
	return d.bias.Clone()
}

// Activation returns the layer's activation.
func (d *Dense) Activation() Activation {
	return d.activation
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.weights.Cols()
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.weights.Rows()
}
