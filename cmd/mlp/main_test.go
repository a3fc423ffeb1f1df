package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/loader"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture writes zero parameters for topo plus one image and returns the
// parameter paths followed by the image path.
func fixture(t *testing.T, topo nn.Topology, image matrix.Shape) (params []string, imagePath string) {
	t.Helper()
	dir := t.TempDir()

	save := func(name string, shape matrix.Shape, fill float32) string {
		m, err := matrix.New(shape.Rows, shape.Cols)
		require.NoError(t, err)
		for i := 0; i < m.Len(); i++ {
			require.NoError(t, m.SetIndex(i, fill))
		}
		path := filepath.Join(dir, name)
		require.NoError(t, loader.SaveMatrix(path, m))
		return path
	}

	var weights, biases []string
	for i, spec := range topo {
		weights = append(weights, save(fmt.Sprintf("w%d", i+1), spec.Weights, 0))
		biases = append(biases, save(fmt.Sprintf("b%d", i+1), spec.Bias, 0))
	}
	return append(weights, biases...), save("img", image, 1)
}

// TestRun_ImageArgs verifies classification of images given as arguments.
func TestRun_ImageArgs(t *testing.T) {
	params, img := fixture(t, nn.DefaultTopology(), nn.ImageShape)

	var out strings.Builder
	err := run(append(params, img), strings.NewReader(""), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Image processed:\n")
	assert.Contains(t, got, strings.Repeat("**", 27)+"\n")
	assert.Contains(t, got, "Mlp result: 0 at probability: 0.1\n")
}

// TestRun_Stdin verifies the interactive loop stops at "q" and skips bad paths.
func TestRun_Stdin(t *testing.T) {
	params, img := fixture(t, nn.DefaultTopology(), nn.ImageShape)

	stdin := strings.NewReader("does-not-exist\n\n" + img + "\nq\n" + img + "\n")
	var out strings.Builder
	require.NoError(t, run(params, stdin, &out))

	assert.Equal(t, 1, strings.Count(out.String(), "Mlp result:"))
	assert.Equal(t, 4, strings.Count(out.String(), "Please insert image path:"))
}

// TestRun_ConfigVerbose verifies a custom topology and the probability dump.
func TestRun_ConfigVerbose(t *testing.T) {
	cfgYAML := "image: {rows: 2, cols: 2}\nlayers:\n  - {weights: [3, 4], activation: relu}\n  - {weights: [2, 3], activation: softmax}\n"
	cfgPath := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	params, img := fixture(t, cfg.Topology(), cfg.Image)

	args := append([]string{"-config", cfgPath, "-verbose"}, params...)
	var out strings.Builder
	require.NoError(t, run(append(args, img), strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "0.5 0.5\n")
	assert.Contains(t, out.String(), "Mlp result: 0 at probability: 0.5\n")
}

// TestRun_Errors verifies argument and file problems are reported.
func TestRun_Errors(t *testing.T) {
	params, _ := fixture(t, nn.DefaultTopology(), nn.ImageShape)

	err := run(params[:7], strings.NewReader(""), &strings.Builder{})
	assert.ErrorIs(t, err, errUsage)

	swapped := append([]string{}, params...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	err = run(swapped, strings.NewReader(""), &strings.Builder{})
	assert.ErrorIs(t, err, matrix.ErrFileSizeMismatch)

	err = run(append(params, "missing-image"), strings.NewReader(""), &strings.Builder{})
	assert.ErrorIs(t, err, matrix.ErrStreamOpenFailure)
}
