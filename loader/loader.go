// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader reads network parameters and images from raw float32 files.
//
// Files are headerless little-endian float32 values in row-major order and
// must be exactly rows*cols*4 bytes long for the shape they are loaded into.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/mlp/loader"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	net, err := loader.LoadNetwork(nn.DefaultTopology(),
//	    []string{"w1", "w2", "w3", "w4"},
//	    []string{"b1", "b2", "b3", "b4"})
//	if err != nil {
//	    log.Fatal(err)
//	}
package loader

import (
	"github.com/born-ml/mlp/internal/loader"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// LoadMatrix reads a matrix of the given shape from path.
func LoadMatrix(path string, shape matrix.Shape) (*matrix.Matrix, error) {
	return loader.LoadMatrix(path, shape)
}

// SaveMatrix writes m to path in the format LoadMatrix reads.
func SaveMatrix(path string, m *matrix.Matrix) error {
	return loader.SaveMatrix(path, m)
}

// LoadImage reads an image of the given shape (typically nn.ImageShape).
func LoadImage(path string, shape matrix.Shape) (*matrix.Matrix, error) {
	return loader.LoadImage(path, shape)
}

// LoadNetwork reads one weight and one bias file per layer of topo and
// builds the network.
func LoadNetwork(topo nn.Topology, weightPaths, biasPaths []string) (*nn.Network, error) {
	return loader.LoadNetwork(topo, weightPaths, biasPaths)
}
