package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// ImageShape is the shape of the images the default topology classifies.
// The network itself only sees the flattened 784×1 vector.
var ImageShape = matrix.Shape{Rows: 28, Cols: 28}

// LayerSpec describes the parameter shapes and activation of one layer.
type LayerSpec struct {
	Weights    matrix.Shape // [out, in]
	Bias       matrix.Shape // [out, 1]
	Activation Kind
}

// In returns the number of input features.
func (s LayerSpec) In() int {
	return s.Weights.Cols
}

// Out returns the number of output features.
func (s LayerSpec) Out() int {
	return s.Weights.Rows
}

// Topology is an ordered sequence of layer descriptors.
type Topology []LayerSpec

// DefaultTopology returns the 784-128-64-20-10 digit classifier:
// three ReLU layers followed by a softmax output layer.
func DefaultTopology() Topology {
	return Topology{
		{Weights: matrix.Shape{Rows: 128, Cols: 784}, Bias: matrix.Shape{Rows: 128, Cols: 1}, Activation: ReLU},
		{Weights: matrix.Shape{Rows: 64, Cols: 128}, Bias: matrix.Shape{Rows: 64, Cols: 1}, Activation: ReLU},
		{Weights: matrix.Shape{Rows: 20, Cols: 64}, Bias: matrix.Shape{Rows: 20, Cols: 1}, Activation: ReLU},
		{Weights: matrix.Shape{Rows: 10, Cols: 20}, Bias: matrix.Shape{Rows: 10, Cols: 1}, Activation: Softmax},
	}
}

// Validate checks that the topology is non-empty, that every shape is
// positive, that each bias is an [out, 1] column, and that consecutive
// layers chain (layer k's input width equals layer k-1's output width).
func (t Topology) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidTopology)
	}

	for i, spec := range t {
		if err := spec.Weights.Validate(); err != nil {
			return fmt.Errorf("%w: layer %d weights: %w", ErrInvalidTopology, i, err)
		}
		if spec.Bias != (matrix.Shape{Rows: spec.Out(), Cols: 1}) {
			return fmt.Errorf("%w: layer %d bias %v must be (%d,1)", ErrInvalidTopology, i, spec.Bias, spec.Out())
		}
		if !spec.Activation.Valid() {
			return fmt.Errorf("%w: layer %d: %w", ErrInvalidTopology, i,
				fmt.Errorf("%w: %v", ErrIncompatibleActivationKind, spec.Activation))
		}
		if i > 0 && spec.In() != t[i-1].Out() {
			return fmt.Errorf("%w: layer %d expects %d inputs, layer %d produces %d",
				ErrInvalidTopology, i, spec.In(), i-1, t[i-1].Out())
		}
	}
	return nil
}

// InputShape returns the shape of the column vector the first layer accepts.
func (t Topology) InputShape() matrix.Shape {
	return matrix.Shape{Rows: t[0].In(), Cols: 1}
}

// Classes returns the width of the last layer.
func (t Topology) Classes() int {
	return t[len(t)-1].Out()
}
