// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for feed-forward network inference.
//
// # Overview
//
// A Network is an ordered chain of Dense layers described by a Topology.
// Each Dense layer computes act(W × x + b) where act is ReLU or Softmax.
// Running a network on one input column vector yields a Digit: the index
// of the most probable class and its probability.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func classify(weights, biases []*matrix.Matrix, image *matrix.Matrix) (nn.Digit, error) {
//	    net, err := nn.NewNetwork(weights, biases) // 784-128-64-20-10
//	    if err != nil {
//	        return nn.Digit{}, err
//	    }
//	    return net.Run(image.Vectorize())
//	}
//
// # Custom Topologies
//
// DefaultTopology is one instance of Topology. Any chain of layers whose
// shapes connect can be used with NewNetworkWithTopology:
//
//	topo := nn.Topology{
//	    {Weights: matrix.Shape{Rows: 16, Cols: 4}, Bias: matrix.Shape{Rows: 16, Cols: 1}, Activation: nn.ReLU},
//	    {Weights: matrix.Shape{Rows: 3, Cols: 16}, Bias: matrix.Shape{Rows: 3, Cols: 1}, Activation: nn.Softmax},
//	}
//	net, err := nn.NewNetworkWithTopology(topo, weights, biases)
//
// # Errors
//
// Constructors and Run return errors matching the package's Err* values
// (and the matrix package's) under errors.Is. Nothing panics on bad input.
package nn
