// SPDX-License-Identifier: MIT

package gconv

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphconv/matrix"
)

// Layer is a Chebyshev graph convolutional layer bound to one graph operator.
//
// Construction validates every size once and copies L. The coefficient tensor
// is exposed through Weights so an external optimizer can update it between
// forward passes.
type Layer struct {
	numOutputs int
	k          int
	numNodes   int
	op         *matrix.Dense
	weights    *Weights
	cfg        config
}

// NewLayer validates the hyperparameters and the operator, copies L and
// fills a fresh weight tensor with the configured Initializer
// (GlorotUniform(DefaultSeed) unless WithInitializer is given).
//
// Errors: ErrValue for non-positive sizes or a failing initializer,
// ErrShape for a bad operator or a wrongly shaped initial tensor.
func NewLayer(numOutputs, K, numNodes int, L matrix.Matrix, opts ...Option) (*Layer, error) {
	if K <= 0 || numOutputs <= 0 || numNodes <= 0 {
		return nil, gconvErrorf(opNewLayer, ErrValue,
			fmt.Errorf("K=%d, numOutputs=%d, numNodes=%d must be > 0", K, numOutputs, numNodes))
	}
	cfg := newConfig(opts...)
	t, err := cfg.init(numOutputs, K)
	if err != nil {
		return nil, gconvErrorf(opNewLayer, ErrValue, fmt.Errorf("initializer: %w", err))
	}
	if err = validateBuild(t, L, K, numOutputs, numNodes); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewLayer, err)
	}
	if err = matrix.ValidateFinite(t); err != nil {
		return nil, gconvErrorf(opNewLayer, ErrValue, err)
	}
	op, err := matrix.AsDense(L.Clone())
	if err != nil {
		return nil, gconvErrorf(opNewLayer, ErrShape, err)
	}

	return &Layer{
		numOutputs: numOutputs,
		k:          K,
		numNodes:   numNodes,
		op:         op,
		weights:    newWeightsFrom(t),
		cfg:        cfg,
	}, nil
}

// Weights returns the layer's coefficient tensor. Callers may mutate it via
// Set or Update; the next Forward observes the change.
func (l *Layer) Weights() *Weights { return l.weights }

// Operator returns a copy of the layer's graph operator.
func (l *Layer) Operator() *matrix.Dense { return l.op.Clone().(*matrix.Dense) }

// Shape returns (numOutputs, K, numNodes).
func (l *Layer) Shape() (numOutputs, K, numNodes int) { return l.numOutputs, l.k, l.numNodes }

// Forward runs one pass: filters from the current weights, then the batch
// average. Returns a numOutputs × numNodes matrix.
func (l *Layer) Forward(X [][]float64) (*matrix.Dense, error) {
	return l.ForwardContext(context.Background(), X)
}

// ForwardContext is Forward with a context that cancels pending channels
// when the layer runs with WithParallel.
func (l *Layer) ForwardContext(ctx context.Context, X [][]float64) (*matrix.Dense, error) {
	filters, err := l.Filters(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}
	Y, err := applyFilters(ctx, filters, X, l.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}

	return Y, nil
}

// Filters returns the filter set for the current weights, served from the
// FilterCache when one is configured and the weights version is unchanged.
// The returned matrices may be shared with the cache and must not be mutated.
func (l *Layer) Filters(ctx context.Context) ([]*matrix.Dense, error) {
	w, version := l.weights.Snapshot()
	key := cacheKey{weights: l.weights, version: version, op: l.op}
	if l.cfg.cache != nil {
		if filters, ok := l.cfg.cache.get(key); ok {
			l.cfg.logger.DebugContext(ctx, "filter cache hit", "version", version)
			return filters, nil
		}
	}
	filters, err := buildFilters(ctx, w, l.op, l.k, l.numOutputs, l.numNodes, l.cfg)
	if err != nil {
		return nil, err
	}
	if l.cfg.cache != nil {
		l.cfg.cache.put(key, filters)
	}

	return filters, nil
}
