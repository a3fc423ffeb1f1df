// Package main provides the mlp command: digit classification with a
// pretrained feed-forward network.
//
// Usage:
//
//	mlp [-config file.yaml] [-verbose] w1 ... wN b1 ... bN [image ...]
//
// With no image arguments, image paths are read from stdin one per line
// until EOF or a line containing "q".
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/loader"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlp: ")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mlp %s\n", version)
		return
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// errUsage reports bad command-line arguments.
var errUsage = errors.New("usage: mlp [-config file.yaml] [-verbose] w1 ... wN b1 ... bN [image ...]")

// run parses args, loads the network and classifies every image.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("mlp", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML topology config (default: 784-128-64-20-10)")
	verbose := fs.Bool("verbose", false, "Print the full probability vector")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	topo := cfg.Topology()
	rest := fs.Args()
	if len(rest) < 2*len(topo) {
		return fmt.Errorf("%w: need %d weight and %d bias files, got %d paths",
			errUsage, len(topo), len(topo), len(rest))
	}
	weightPaths := rest[:len(topo)]
	biasPaths := rest[len(topo) : 2*len(topo)]
	images := rest[2*len(topo):]

	net, err := loader.LoadNetwork(topo, weightPaths, biasPaths)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	log.Printf("loaded %d layers, input %v, %d classes", len(topo), topo.InputShape(), topo.Classes())

	c := classifier{net: net, image: cfg.Image, verbose: *verbose, out: stdout}

	if len(images) > 0 {
		for _, path := range images {
			if err := c.classify(path); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(stdout, "Please insert image path:")
		if !scanner.Scan() {
			return scanner.Err()
		}
		path := strings.TrimSpace(scanner.Text())
		if path == "q" {
			return nil
		}
		if path == "" {
			continue
		}
		if err := c.classify(path); err != nil {
			// Interactive mode keeps going on bad input.
			log.Print(err)
		}
	}
}

type classifier struct {
	net     *nn.Network
	image   matrix.Shape
	verbose bool
	out     io.Writer
}

// classify loads one image, draws it and prints the network's answer.
func (c classifier) classify(path string) error {
	img, err := loader.LoadImage(path, c.image)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Image processed:")
	if err := img.Render(c.out); err != nil {
		return err
	}

	input := img.VectorizeInPlace()
	if c.verbose {
		probs, err := c.net.Forward(input)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := probs.Transpose().WritePlain(c.out); err != nil {
			return err
		}
	}

	digit, err := c.net.Run(input)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(c.out, "Mlp result: %d at probability: %g\n", digit.Value, digit.Probability)
	return nil
}
