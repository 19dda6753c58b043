// SPDX-License-Identifier: MIT

package gsp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphconv/matrix"
)

// ErrSignalLength is returned when a signal does not have one entry per vertex.
var ErrSignalLength = errors.New("gsp: signal length mismatch")

// Option tunes the eigen solver.
type Option func(*config)

type config struct {
	tol     float64
	maxIter int
}

func newConfig(opts ...Option) config {
	cfg := config{tol: matrix.DefaultEigenTol, maxIter: matrix.DefaultEigenMaxIter}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTolerance sets the symmetry and convergence tolerance. Panics if tol < 0.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("gsp: WithTolerance(tol < 0)")
	}
	return func(c *config) { c.tol = tol }
}

// WithMaxIter caps Jacobi rotations. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("gsp: WithMaxIter(n < 1)")
	}
	return func(c *config) { c.maxIter = n }
}

// CheckSymmetric reports whether |X − Xᵀ| ≤ tol element-wise.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf (bad tol). A non-square X
// is reported as not symmetric.
func CheckSymmetric(X matrix.Matrix, tol float64) (bool, error) {
	err := matrix.ValidateSymmetric(X, tol)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, matrix.ErrAsymmetry), errors.Is(err, matrix.ErrNonSquare):
		return false, nil
	default:
		return false, fmt.Errorf("CheckSymmetric: %w", err)
	}
}

// Basis is the graph Fourier basis of a symmetric operator.
type Basis struct {
	values  []float64     // ascending
	vectors *matrix.Dense // column k pairs with values[k]
}

// FourierBasis diagonalizes the symmetric L and orders eigenpairs by
// ascending eigenvalue (ties keep solver order).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry,
// matrix.ErrMatrixEigenFailed.
// Complexity: dominated by matrix.Eigen.
func FourierBasis(L matrix.Matrix, opts ...Option) (*Basis, error) {
	cfg := newConfig(opts...)
	vals, Q, err := matrix.Eigen(L, cfg.tol, cfg.maxIter)
	if err != nil {
		return nil, fmt.Errorf("FourierBasis: %w", err)
	}
	n := len(vals)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	sorted := make([]float64, n)
	U, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, fmt.Errorf("FourierBasis: %w", err)
	}
	var v float64
	for k, src := range order {
		sorted[k] = vals[src]
		for i := 0; i < n; i++ {
			v, _ = Q.At(i, src)
			if err = U.Set(i, k, v); err != nil {
				return nil, fmt.Errorf("FourierBasis: %w", err)
			}
		}
	}

	return &Basis{values: sorted, vectors: U}, nil
}

// Eigenvalues returns a copy of the ascending eigenvalues.
func (b *Basis) Eigenvalues() []float64 { return append([]float64(nil), b.values...) }

// Eigenvectors returns a copy of U (column k ↔ k-th eigenvalue).
func (b *Basis) Eigenvectors() *matrix.Dense { return b.vectors.Clone().(*matrix.Dense) }

// LambdaMax returns the largest eigenvalue.
func (b *Basis) LambdaMax() float64 { return b.values[len(b.values)-1] }

// GFT returns x̂ = Uᵀx. Errors: ErrSignalLength.
func (b *Basis) GFT(x []float64) ([]float64, error) {
	if len(x) != len(b.values) {
		return nil, fmt.Errorf("GFT: len %d, want %d: %w", len(x), len(b.values), ErrSignalLength)
	}
	Ut, err := matrix.Transpose(b.vectors)
	if err != nil {
		return nil, fmt.Errorf("GFT: %w", err)
	}

	return matrix.MatVec(Ut, x)
}

// IGFT returns x = U·x̂. Errors: ErrSignalLength.
func (b *Basis) IGFT(xhat []float64) ([]float64, error) {
	if len(xhat) != len(b.values) {
		return nil, fmt.Errorf("IGFT: len %d, want %d: %w", len(xhat), len(b.values), ErrSignalLength)
	}

	return matrix.MatVec(b.vectors, xhat)
}

// LambdaMax returns the largest eigenvalue of the symmetric L.
func LambdaMax(L matrix.Matrix, opts ...Option) (float64, error) {
	b, err := FourierBasis(L, opts...)
	if err != nil {
		return 0, fmt.Errorf("LambdaMax: %w", err)
	}

	return b.LambdaMax(), nil
}
