// Package config loads network topologies from YAML.
//
// A config names the input image shape and, for every layer, its weight
// shape and activation. Bias shapes are derived as [out, 1]:
//
//	image: {rows: 28, cols: 28}
//	layers:
//	  - {weights: [128, 784], activation: relu}
//	  - {weights: [64, 128], activation: relu}
//	  - {weights: [20, 64], activation: relu}
//	  - {weights: [10, 20], activation: softmax}
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config is malformed or inconsistent.
var ErrInvalidConfig = errors.New("invalid config")

// Config captures the network layout used by the CLI.
type Config struct {
	Image  matrix.Shape `yaml:"image"`
	Layers []Layer      `yaml:"layers"`
}

// Layer describes one dense layer.
type Layer struct {
	Weights    [2]int  `yaml:"weights"` // [out, in]
	Activation nn.Kind `yaml:"activation"`
}

// Default returns the 28×28 image, 784-128-64-20-10 digit classifier.
func Default() *Config {
	topo := nn.DefaultTopology()
	cfg := &Config{
		Image:  nn.ImageShape,
		Layers: make([]Layer, len(topo)),
	}
	for i, spec := range topo {
		cfg.Layers[i] = Layer{
			Weights:    [2]int{spec.Weights.Rows, spec.Weights.Cols},
			Activation: spec.Activation,
		}
	}
	return cfg
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	//nolint:gosec // G304: config path is supplied by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a Config from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifies the config describes a runnable network: the image
// shape is positive, the topology is consistent, and the first layer
// consumes exactly one flattened image.
func (c *Config) Validate() error {
	if err := c.Image.Validate(); err != nil {
		return fmt.Errorf("%w: image: %w", ErrInvalidConfig, err)
	}

	topo := c.Topology()
	if err := topo.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if in := topo[0].In(); in != c.Image.NumElements() {
		return fmt.Errorf("%w: first layer takes %d inputs, image %v has %d pixels",
			ErrInvalidConfig, in, c.Image, c.Image.NumElements())
	}
	return nil
}

// Topology converts the config to layer descriptors.
func (c *Config) Topology() nn.Topology {
	topo := make(nn.Topology, len(c.Layers))
	for i, l := range c.Layers {
		out, in := l.Weights[0], l.Weights[1]
		topo[i] = nn.LayerSpec{
			Weights:    matrix.Shape{Rows: out, Cols: in},
			Bias:       matrix.Shape{Rows: out, Cols: 1},
			Activation: l.Activation,
		}
	}
	return topo
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
