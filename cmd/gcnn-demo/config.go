// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphconv/chebyshev"
	"github.com/katalvlaran/graphconv/laplacian"
)

// Operator sources.
const (
	sourceRandom = "random" // dense U[0,1) matrix, not necessarily symmetric
	sourceGraph  = "graph"  // Laplacian of a generated graph
)

// Graph topologies accepted under operator.graph.topology.
var topologies = []string{"cycle", "path", "star", "grid", "complete", "random-sparse", "random-dense"}

// Initializers accepted under layer.init.
var initializers = []string{"glorot", "zeros", "uniform"}

// Config describes one demo run.
type Config struct {
	Seed     int64          `yaml:"seed"`
	Nodes    int            `yaml:"nodes"`
	Signals  int            `yaml:"signals"`
	Layer    LayerConfig    `yaml:"layer"`
	Operator OperatorConfig `yaml:"operator"`
}

// LayerConfig holds the convolution hyperparameters.
type LayerConfig struct {
	Filters int    `yaml:"filters"`
	Order   int    `yaml:"order"`
	Base    string `yaml:"base"`
	Init    string `yaml:"init"`
	Workers int    `yaml:"workers"`
	Cache   bool   `yaml:"cache"`
}

// OperatorConfig selects how the N×N graph operator is produced.
type OperatorConfig struct {
	Source    string      `yaml:"source"`
	Laplacian string      `yaml:"laplacian"`
	Rescale   bool        `yaml:"rescale"`
	Graph     GraphConfig `yaml:"graph"`
}

// GraphConfig parameterizes generated graphs. Grid uses Rows×Cols and
// ignores Nodes.
type GraphConfig struct {
	Topology    string  `yaml:"topology"`
	Probability float64 `yaml:"probability"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
}

// defaultConfig reproduces the classic experiment: 5 nodes, 3 filters of
// order 2, a random dense operator and 10 random signals.
func defaultConfig() Config {
	return Config{
		Seed:    1,
		Nodes:   5,
		Signals: 10,
		Layer: LayerConfig{
			Filters: 3,
			Order:   2,
			Base:    chebyshev.BaseOnes.String(),
			Init:    "glorot",
			Workers: 1,
		},
		Operator: OperatorConfig{
			Source:    sourceRandom,
			Laplacian: laplacian.Combinatorial.String(),
			Graph:     GraphConfig{Topology: "cycle", Probability: 0.3},
		},
	}
}

// loadConfig overlays the YAML file at path on defaultConfig. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Nodes <= 0 && !(c.Operator.Source == sourceGraph && c.Operator.Graph.Topology == "grid") {
		errs = append(errs, fmt.Errorf("nodes must be > 0, got %d", c.Nodes))
	}
	if c.Signals <= 0 {
		errs = append(errs, fmt.Errorf("signals must be > 0, got %d", c.Signals))
	}
	if c.Layer.Filters <= 0 {
		errs = append(errs, fmt.Errorf("layer.filters must be > 0, got %d", c.Layer.Filters))
	}
	if c.Layer.Order <= 0 {
		errs = append(errs, fmt.Errorf("layer.order must be > 0, got %d", c.Layer.Order))
	}
	if c.Layer.Workers <= 0 {
		errs = append(errs, fmt.Errorf("layer.workers must be > 0, got %d", c.Layer.Workers))
	}
	if _, err := chebyshev.ParseBase(c.Layer.Base); err != nil {
		errs = append(errs, fmt.Errorf("layer.base: %w", err))
	}
	if !contains(initializers, c.Layer.Init) {
		errs = append(errs, fmt.Errorf("layer.init: unknown %q", c.Layer.Init))
	}
	switch c.Operator.Source {
	case sourceRandom:
	case sourceGraph:
		if _, err := laplacian.ParseKind(c.Operator.Laplacian); err != nil {
			errs = append(errs, fmt.Errorf("operator.laplacian: %w", err))
		}
		g := c.Operator.Graph
		if !contains(topologies, g.Topology) {
			errs = append(errs, fmt.Errorf("operator.graph.topology: unknown %q", g.Topology))
		}
		if g.Topology == "grid" && (g.Rows <= 0 || g.Cols <= 0) {
			errs = append(errs, errors.New("operator.graph: grid needs rows and cols > 0"))
		}
		if g.Probability < 0 || g.Probability > 1 {
			errs = append(errs, fmt.Errorf("operator.graph.probability must be in [0,1], got %g", g.Probability))
		}
	default:
		errs = append(errs, fmt.Errorf("operator.source: unknown %q", c.Operator.Source))
	}

	return errors.Join(errs...)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
