package loader

import (
	"fmt"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// LoadMatrix reads a rows×cols matrix from the file at path.
//
// Returns an error wrapping matrix.ErrStreamOpenFailure if the file cannot
// be opened, or matrix.ErrFileSizeMismatch if its size does not fit.
func LoadMatrix(path string, shape matrix.Shape) (*matrix.Matrix, error) {
	m, err := matrix.New(shape.Rows, shape.Cols)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G304: parameter paths are supplied by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", matrix.ErrStreamOpenFailure, err)
	}
	defer f.Close()

	if _, err := m.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// SaveMatrix writes m to path in the format LoadMatrix reads.
func SaveMatrix(path string, m *matrix.Matrix) error {
	//nolint:gosec // G304: output path is supplied by the operator
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := m.WriteTo(f); err != nil {
		_ = f.Close() // Best effort close on error
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// LoadImage reads an image of the given shape, typically nn.ImageShape.
// The result keeps the image shape; call Vectorize before running it
// through a network.
func LoadImage(path string, shape matrix.Shape) (*matrix.Matrix, error) {
	img, err := LoadMatrix(path, shape)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}

// LoadParameters reads one weight and one bias file per layer of topo,
// shaping each matrix by its LayerSpec.
func LoadParameters(topo nn.Topology, weightPaths, biasPaths []string) (weights, biases []*matrix.Matrix, err error) {
	if len(weightPaths) != len(topo) || len(biasPaths) != len(topo) {
		return nil, nil, fmt.Errorf("%w: topology has %d layers, got %d weight and %d bias files",
			nn.ErrLayerSizeMismatch, len(topo), len(weightPaths), len(biasPaths))
	}

	weights = make([]*matrix.Matrix, len(topo))
	biases = make([]*matrix.Matrix, len(topo))
	for i, spec := range topo {
		if weights[i], err = LoadMatrix(weightPaths[i], spec.Weights); err != nil {
			return nil, nil, fmt.Errorf("layer %d weights: %w", i, err)
		}
		if biases[i], err = LoadMatrix(biasPaths[i], spec.Bias); err != nil {
			return nil, nil, fmt.Errorf("layer %d bias: %w", i, err)
		}
	}
	return weights, biases, nil
}

// LoadNetwork reads the parameters for topo and builds the network.
func LoadNetwork(topo nn.Topology, weightPaths, biasPaths []string) (*nn.Network, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	weights, biases, err := LoadParameters(topo, weightPaths, biasPaths)
	if err != nil {
		return nil, err
	}
	return nn.NewNetworkWithTopology(topo, weights, biases)
}
