package nn

import (
	"errors"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroParams returns correctly shaped all-zero weights and biases for topo.
func zeroParams(t *testing.T, topo Topology) (weights, biases []*matrix.Matrix) {
	t.Helper()
	for _, spec := range topo {
		w, err := matrix.New(spec.Weights.Rows, spec.Weights.Cols)
		require.NoError(t, err)
		b, err := matrix.New(spec.Bias.Rows, spec.Bias.Cols)
		require.NoError(t, err)
		weights = append(weights, w)
		biases = append(biases, b)
	}
	return weights, biases
}

// TestNetwork_ZeroWeights verifies an all-zero network picks class 0 at 0.1.
func TestNetwork_ZeroWeights(t *testing.T) {
	weights, biases := zeroParams(t, DefaultTopology())

	net, err := NewNetwork(weights, biases)
	require.NoError(t, err)

	image, err := matrix.New(784, 1)
	require.NoError(t, err)
	for i := 0; i < image.Len(); i++ {
		require.NoError(t, image.SetIndex(i, float32(i%7)/7))
	}

	digit, err := net.Run(image)
	require.NoError(t, err)
	assert.Equal(t, 0, digit.Value)
	assert.InDelta(t, 0.1, float64(digit.Probability), 1e-6)
}

// TestNetwork_LayerSizeMismatch verifies a (127,784) first layer is rejected.
func TestNetwork_LayerSizeMismatch(t *testing.T) {
	weights, biases := zeroParams(t, DefaultTopology())
	bad, err := matrix.New(127, 784)
	require.NoError(t, err)
	weights[0] = bad

	net, err := NewNetwork(weights, biases)
	assert.Nil(t, net)
	assert.ErrorIs(t, err, ErrLayerSizeMismatch)

	var layerErr *LayerError
	require.True(t, errors.As(err, &layerErr))
	assert.Equal(t, 0, layerErr.Layer)
	assert.Equal(t, "weights", layerErr.Param)
	assert.Equal(t, matrix.Shape{Rows: 128, Cols: 784}, layerErr.Expected)
	assert.Equal(t, matrix.Shape{Rows: 127, Cols: 784}, layerErr.Actual)
}

// TestNetwork_BiasSizeMismatch verifies bias shapes are checked per layer.
func TestNetwork_BiasSizeMismatch(t *testing.T) {
	weights, biases := zeroParams(t, DefaultTopology())
	bad, err := matrix.New(10, 2)
	require.NoError(t, err)
	biases[3] = bad

	_, err = NewNetwork(weights, biases)
	assert.ErrorIs(t, err, ErrLayerSizeMismatch)

	var layerErr *LayerError
	require.True(t, errors.As(err, &layerErr))
	assert.Equal(t, 3, layerErr.Layer)
	assert.Equal(t, "bias", layerErr.Param)
}

// TestNetwork_LayerCountMismatch verifies missing or nil matrices are rejected.
func TestNetwork_LayerCountMismatch(t *testing.T) {
	weights, biases := zeroParams(t, DefaultTopology())

	_, err := NewNetwork(weights[:3], biases)
	assert.ErrorIs(t, err, ErrLayerSizeMismatch)

	weights[2] = nil
	_, err = NewNetwork(weights, biases)
	assert.ErrorIs(t, err, ErrLayerSizeMismatch)
}

// TestNetwork_Argmax verifies the winner and the lowest-index tie rule.
func TestNetwork_Argmax(t *testing.T) {
	topo := Topology{
		{Weights: matrix.Shape{Rows: 4, Cols: 4}, Bias: matrix.Shape{Rows: 4, Cols: 1}, Activation: Softmax},
	}
	w, err := matrix.Identity(4)
	require.NoError(t, err)
	b, err := matrix.New(4, 1)
	require.NoError(t, err)

	net, err := NewNetworkWithTopology(topo, []*matrix.Matrix{w}, []*matrix.Matrix{b})
	require.NoError(t, err)

	digit, err := net.Run(column(t, 0, 3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, digit.Value)

	digit, err = net.Run(column(t, 0, 2, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, digit.Value, "ties resolve to the first index")

	probs, err := net.Forward(column(t, 0, 2, 2, 1))
	require.NoError(t, err)
	p, err := probs.AtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, p, digit.Probability)
}

// TestNetwork_ForwardChain verifies layer k's output feeds layer k+1.
func TestNetwork_ForwardChain(t *testing.T) {
	topo := Topology{
		{Weights: matrix.Shape{Rows: 3, Cols: 2}, Bias: matrix.Shape{Rows: 3, Cols: 1}, Activation: ReLU},
		{Weights: matrix.Shape{Rows: 2, Cols: 3}, Bias: matrix.Shape{Rows: 2, Cols: 1}, Activation: Softmax},
	}
	w1, err := matrix.FromSlice(3, 2, []float32{1, 0, 0, 1, -1, -1})
	require.NoError(t, err)
	b1 := column(t, 0, 0, 0)
	w2, err := matrix.FromSlice(2, 3, []float32{1, 0, 0, 0, 1, 0})
	require.NoError(t, err)
	b2 := column(t, 0, 0)

	net, err := NewNetworkWithTopology(topo, []*matrix.Matrix{w1, w2}, []*matrix.Matrix{b1, b2})
	require.NoError(t, err)

	// Layer 1: ReLU([1, 4, -5]) = [1, 4, 0]; layer 2 selects [1, 4].
	digit, err := net.Run(column(t, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, digit.Value)

	want := column(t, 1, 4)
	act, err := NewActivation(Softmax)
	require.NoError(t, err)
	wantProbs, err := act.Apply(want)
	require.NoError(t, err)

	probs, err := net.Forward(column(t, 1, 4))
	require.NoError(t, err)
	assert.True(t, probs.EqualApprox(wantProbs, 1e-6))
	assert.Len(t, net.Layers(), 2)
	assert.Equal(t, topo, net.Topology())
}

// TestNetwork_InputShapeMismatch verifies a wrongly shaped image is reported.
func TestNetwork_InputShapeMismatch(t *testing.T) {
	weights, biases := zeroParams(t, DefaultTopology())
	net, err := NewNetwork(weights, biases)
	require.NoError(t, err)

	image, err := matrix.New(28, 28)
	require.NoError(t, err)

	_, err = net.Run(image)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatchMultiply)
}

// TestDigit_String verifies the result formatting.
func TestDigit_String(t *testing.T) {
	assert.Equal(t, "7 (0.5)", Digit{Value: 7, Probability: 0.5}.String())
}
