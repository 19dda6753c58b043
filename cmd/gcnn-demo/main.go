// SPDX-License-Identifier: MIT

// Package main implements gcnn-demo, which runs one forward pass of a
// Chebyshev graph convolutional layer on a random batch of graph signals
// and prints the batch and the per-channel output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/graphconv/bfs"
	"github.com/katalvlaran/graphconv/builder"
	"github.com/katalvlaran/graphconv/chebyshev"
	"github.com/katalvlaran/graphconv/gconv"
	"github.com/katalvlaran/graphconv/gsp"
	"github.com/katalvlaran/graphconv/laplacian"
	"github.com/katalvlaran/graphconv/matrix"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "gcnn-demo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

// run wires flags, config, logging and the forward pass. Results go to
// stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err = validateFlags(cli); err != nil {
		return err
	}
	logger := setupLogger(cli.LogLevel, cli.LogFormat, stderr)

	cfg, err := loadConfig(cli.ConfigPath)
	if err != nil {
		return err
	}
	cli.apply(&cfg)
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cli.Validate {
		logger.Info("Configuration is valid")
		return nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	L, err := buildOperator(ctx, cfg, rng, logger)
	if err != nil {
		return err
	}
	n := L.Rows()

	layer, err := newLayer(cfg, n, L, logger)
	if err != nil {
		return err
	}

	X := randomBatch(rng, cfg.Signals, n)
	start := time.Now()
	Y, err := layer.ForwardContext(ctx, X)
	if err != nil {
		return fmt.Errorf("forward pass: %w", err)
	}
	logger.Info("Forward pass complete",
		"nodes", n,
		"filters", cfg.Layer.Filters,
		"order", cfg.Layer.Order,
		"signals", cfg.Signals,
		"elapsed", time.Since(start))

	return printResult(stdout, X, Y)
}

// buildOperator returns the N×N operator described by cfg.Operator.
func buildOperator(ctx context.Context, cfg Config, rng *rand.Rand, logger *slog.Logger) (*matrix.Dense, error) {
	if cfg.Operator.Source == sourceRandom {
		L, err := matrix.NewDense(cfg.Nodes, cfg.Nodes)
		if err != nil {
			return nil, fmt.Errorf("operator: %w", err)
		}
		if err = L.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
			return nil, fmt.Errorf("operator: %w", err)
		}
		logger.Debug("Random operator", "nodes", cfg.Nodes)

		return L, nil
	}

	gc := cfg.Operator.Graph
	var cons builder.Constructor
	switch gc.Topology {
	case "cycle":
		cons = builder.Cycle(cfg.Nodes)
	case "path":
		cons = builder.Path(cfg.Nodes)
	case "star":
		cons = builder.Star(cfg.Nodes)
	case "grid":
		cons = builder.Grid(gc.Rows, gc.Cols)
	case "complete":
		cons = builder.Complete(cfg.Nodes)
	case "random-sparse":
		cons = builder.RandomSparse(cfg.Nodes, gc.Probability)
	case "random-dense":
		cons = builder.RandomDense(cfg.Nodes)
	}
	width := len(fmt.Sprint(cfg.Nodes - 1))
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithIDScheme(builder.PaddedIDFn(width))},
		cons)
	if err != nil {
		return nil, fmt.Errorf("operator graph: %w", err)
	}
	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("operator graph: %w", err)
	}
	if len(comps) > 1 {
		logger.Warn("Operator graph is disconnected", "components", len(comps))
	}
	kind, err := laplacian.ParseKind(cfg.Operator.Laplacian)
	if err != nil {
		return nil, err
	}
	_, L, err := laplacian.FromGraph(g, kind)
	if err != nil {
		return nil, fmt.Errorf("operator: %w", err)
	}
	if ok, err := gsp.CheckSymmetric(L, matrix.DefaultEpsilon); err != nil || !ok {
		logger.Warn("Operator is not symmetric", "error", err)
	}
	logger.Debug("Graph operator",
		"topology", gc.Topology,
		"laplacian", kind.String(),
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount())

	if !cfg.Operator.Rescale {
		return L, nil
	}
	lmax, err := gsp.LambdaMax(L)
	if err != nil {
		return nil, fmt.Errorf("operator spectrum: %w", err)
	}
	if lmax <= 0 {
		logger.Warn("Operator has no positive spectrum, rescale skipped", "lambda_max", lmax)
		return L, nil
	}
	logger.Debug("Rescaling operator", "lambda_max", lmax)
	Lt, err := laplacian.Rescale(L, lmax)
	if err != nil {
		return nil, fmt.Errorf("operator rescale: %w", err)
	}

	return Lt, nil
}

// newLayer translates cfg.Layer into gconv options.
func newLayer(cfg Config, n int, L *matrix.Dense, logger *slog.Logger) (*gconv.Layer, error) {
	base, err := chebyshev.ParseBase(cfg.Layer.Base)
	if err != nil {
		return nil, err
	}
	var initFn gconv.Initializer
	switch cfg.Layer.Init {
	case "zeros":
		initFn = gconv.Zeros()
	case "uniform":
		initFn = gconv.Uniform(0, 1, cfg.Seed)
	default:
		initFn = gconv.GlorotUniform(cfg.Seed)
	}
	opts := []gconv.Option{
		gconv.WithChebyshev(chebyshev.WithBase(base)),
		gconv.WithInitializer(initFn),
		gconv.WithParallel(cfg.Layer.Workers),
		gconv.WithLogger(logger),
	}
	if cfg.Layer.Cache {
		opts = append(opts, gconv.WithFilterCache(gconv.NewFilterCache()))
	}

	layer, err := gconv.NewLayer(cfg.Layer.Filters, cfg.Layer.Order, n, L, opts...)
	if err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}

	return layer, nil
}

func randomBatch(rng *rand.Rand, m, n int) [][]float64 {
	X := make([][]float64, m)
	for j := range X {
		X[j] = make([]float64, n)
		for v := range X[j] {
			X[j][v] = rng.Float64()
		}
	}

	return X
}

func printResult(w io.Writer, X [][]float64, Y *matrix.Dense) error {
	xm, err := matrix.NewFromRows(X)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\n%v", xm, Y)

	return err
}
