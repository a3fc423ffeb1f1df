package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Digit is a classification result: the winning class and its probability.
type Digit struct {
	Value       int
	Probability float32
}

// String renders the result as "value (probability)".
func (d Digit) String() string {
	return fmt.Sprintf("%d (%g)", d.Value, d.Probability)
}

// Network chains Dense layers built from a Topology.
//
// Each layer's output becomes the next layer's input. The last layer's
// output is a probability vector which Run reduces to a Digit.
//
// Example:
//
//	net, err := nn.NewNetwork(weights, biases) // 784-128-64-20-10
//	if err != nil {
//	    return err
//	}
//	digit, err := net.Run(image) // image is 784×1
type Network struct {
	topology Topology
	layers   []*Dense
}

// NewNetwork builds the default four-layer digit classifier.
// See NewNetworkWithTopology.
func NewNetwork(weights, biases []*matrix.Matrix) (*Network, error) {
	return NewNetworkWithTopology(DefaultTopology(), weights, biases)
}

// NewNetworkWithTopology builds a network from one weight and one bias
// matrix per layer of topo.
//
// Every matrix must match its LayerSpec exactly; otherwise the returned
// error wraps ErrLayerSizeMismatch (a *LayerError names the offending
// layer). A topology that fails Validate wraps ErrInvalidTopology.
func NewNetworkWithTopology(topo Topology, weights, biases []*matrix.Matrix) (*Network, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if len(weights) != len(topo) || len(biases) != len(topo) {
		return nil, fmt.Errorf("%w: topology has %d layers, got %d weights and %d biases",
			ErrLayerSizeMismatch, len(topo), len(weights), len(biases))
	}

	layers := make([]*Dense, len(topo))
	for i, spec := range topo {
		if weights[i] == nil || weights[i].Shape() != spec.Weights {
			return nil, &LayerError{Layer: i, Param: "weights", Expected: spec.Weights, Actual: shapeOf(weights[i])}
		}
		if biases[i] == nil || biases[i].Shape() != spec.Bias {
			return nil, &LayerError{Layer: i, Param: "bias", Expected: spec.Bias, Actual: shapeOf(biases[i])}
		}

		layer, err := NewDense(weights[i], biases[i], spec.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = layer
	}

	topology := make(Topology, len(topo))
	copy(topology, topo)

	return &Network{topology: topology, layers: layers}, nil
}

func shapeOf(m *matrix.Matrix) matrix.Shape {
	if m == nil {
		return matrix.Shape{}
	}
	return m.Shape()
}

// Forward runs the layers in order and returns the last layer's output.
func (n *Network) Forward(image *matrix.Matrix) (*matrix.Matrix, error) {
	out := image
	for i, layer := range n.layers {
		next, err := layer.Forward(out)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// Run classifies image and returns the most probable class.
//
// The winner is the first index whose probability is strictly greater than
// every earlier one, starting from a running maximum of 0 at index 0. Ties
// therefore resolve to the lowest index, and an all-zero output yields
// Digit{Value: 0, Probability: 0}.
func (n *Network) Run(image *matrix.Matrix) (Digit, error) {
	probs, err := n.Forward(image)
	if err != nil {
		return Digit{}, err
	}

	best := Digit{}
	for i, p := range probs.Data() {
		if p > best.Probability {
			best = Digit{Value: i, Probability: p}
		}
	}
	return best, nil
}

// Topology returns a copy of the network's topology.
func (n *Network) Topology() Topology {
	topo := make(Topology, len(n.topology))
	copy(topo, n.topology)
	return topo
}

// Layers returns the network's layers in order.
// Layers are immutable; their accessors return copies.
func (n *Network) Layers() []*Dense {
	layers := make([]*Dense, len(n.layers))
	copy(layers, n.layers)
	return layers
}
