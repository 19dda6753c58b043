// SPDX-License-Identifier: MIT

package gconv

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphconv/matrix"
)

// DefaultSeed seeds the default GlorotUniform initializer.
const DefaultSeed int64 = 1

// Initializer produces a fresh rows×cols coefficient tensor.
type Initializer func(rows, cols int) (*matrix.Dense, error)

// Zeros fills the tensor with 0.
func Zeros() Initializer {
	return func(rows, cols int) (*matrix.Dense, error) {
		return matrix.NewZeros(rows, cols)
	}
}

// Constant fills the tensor with v.
func Constant(v float64) Initializer {
	return func(rows, cols int) (*matrix.Dense, error) {
		d, err := matrix.NewDense(rows, cols)
		if err != nil {
			return nil, err
		}
		if err = d.Apply(func(_, _ int, _ float64) float64 { return v }); err != nil {
			return nil, err
		}

		return d, nil
	}
}

// Uniform draws entries from [lo, hi) with a dedicated source seeded by seed.
// Each call restarts the source, so equal seeds give equal tensors.
func Uniform(lo, hi float64, seed int64) Initializer {
	return func(rows, cols int) (*matrix.Dense, error) {
		d, err := matrix.NewDense(rows, cols)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(seed))
		span := hi - lo
		if err = d.Apply(func(_, _ int, _ float64) float64 {
			return lo + span*rng.Float64()
		}); err != nil {
			return nil, err
		}

		return d, nil
	}
}

// GlorotUniform draws from [-limit, limit) with limit = √(6/(rows+cols)),
// the default kernel initializer of common deep learning toolkits.
func GlorotUniform(seed int64) Initializer {
	return func(rows, cols int) (*matrix.Dense, error) {
		limit := math.Sqrt(6.0 / float64(rows+cols))
		return Uniform(-limit, limit, seed)(rows, cols)
	}
}

// matrixIsNaN reports whether err carries matrix.ErrNaNInf.
func matrixIsNaN(err error) bool { return errors.Is(err, matrix.ErrNaNInf) }
