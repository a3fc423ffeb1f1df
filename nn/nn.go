// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Activations

// Kind selects an activation function.
type Kind = nn.Kind

// Supported activation kinds.
const (
	ReLU    Kind = nn.ReLU
	Softmax Kind = nn.Softmax
)

// Activation applies one activation function to a whole matrix.
type Activation = nn.Activation

// NewActivation creates an activation of the given kind.
func NewActivation(kind Kind) (Activation, error) {
	return nn.NewActivation(kind)
}

// ParseKind converts an activation name ("relu", "softmax") to its Kind.
func ParseKind(s string) (Kind, error) {
	return nn.ParseKind(s)
}

// Layers

// Dense is a fully connected layer followed by an activation.
type Dense = nn.Dense

// NewDense creates a Dense layer from copies of weights [out, in] and bias [out, 1].
//
// Example:
//
//	w, _ := matrix.Identity(2)
//	b, _ := matrix.New(2, 1)
//	layer, err := nn.NewDense(w, b, nn.ReLU)
func NewDense(weights, bias *matrix.Matrix, kind Kind) (*Dense, error) {
	return nn.NewDense(weights, bias, kind)
}

// Networks

// LayerSpec describes the parameter shapes and activation of one layer.
type LayerSpec = nn.LayerSpec

// Topology is an ordered sequence of layer descriptors.
type Topology = nn.Topology

// Network chains Dense layers built from a Topology.
type Network = nn.Network

// Digit is a classification result.
type Digit = nn.Digit

// LayerError reports a weight or bias matrix that does not fit its layer.
type LayerError = nn.LayerError

// ImageShape is the 28×28 shape of the images DefaultTopology classifies.
var ImageShape = nn.ImageShape

// DefaultTopology returns the 784-128-64-20-10 digit classifier.
func DefaultTopology() Topology {
	return nn.DefaultTopology()
}

// NewNetwork builds the default four-layer digit classifier.
func NewNetwork(weights, biases []*matrix.Matrix) (*Network, error) {
	return nn.NewNetwork(weights, biases)
}

// NewNetworkWithTopology builds a network with one weight and one bias
// matrix per layer of topo.
func NewNetworkWithTopology(topo Topology, weights, biases []*matrix.Matrix) (*Network, error) {
	return nn.NewNetworkWithTopology(topo, weights, biases)
}

// Errors

// Error kinds. Use errors.Is to test for them.
var (
	ErrIncompatibleActivationKind = nn.ErrIncompatibleActivationKind
	ErrDivisionByZero             = nn.ErrDivisionByZero
	ErrBiasRowMismatch            = nn.ErrBiasRowMismatch
	ErrLayerSizeMismatch          = nn.ErrLayerSizeMismatch
	ErrInvalidTopology            = nn.ErrInvalidTopology
)
