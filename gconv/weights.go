// SPDX-License-Identifier: MIT

package gconv

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/graphconv/matrix"
)

// Weights is the (numOutputs × K) filter coefficient tensor.
//
// The tensor belongs to whoever trains it. Readers take a Snapshot; writers
// go through Set or Update, and every successful write increments Version.
// The mutex makes a single snapshot consistent; ordering writes against
// forward passes is up to the caller.
type Weights struct {
	mu      sync.RWMutex
	data    *matrix.Dense
	version uint64
}

// NewWeights returns a zero tensor. Errors: ErrValue for non-positive sizes.
func NewWeights(numOutputs, K int) (*Weights, error) {
	if numOutputs <= 0 || K <= 0 {
		return nil, gconvErrorf(opNewWeights, ErrValue,
			fmt.Errorf("numOutputs=%d, K=%d", numOutputs, K))
	}
	d, err := matrix.NewZeros(numOutputs, K)
	if err != nil {
		return nil, gconvErrorf(opNewWeights, ErrValue, err)
	}

	return &Weights{data: d}, nil
}

// WeightsFromRows copies rows[i][k] = w[i,k] into a new tensor.
// Errors: ErrShape for empty or ragged rows, ErrValue for NaN/Inf entries.
func WeightsFromRows(rows [][]float64) (*Weights, error) {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		class := ErrShape
		if matrixIsNaN(err) {
			class = ErrValue
		}
		return nil, gconvErrorf(opWeightsFromRows, class, err)
	}

	return &Weights{data: d}, nil
}

// newWeightsFrom adopts d without copying.
func newWeightsFrom(d *matrix.Dense) *Weights { return &Weights{data: d} }

// Shape returns (numOutputs, K).
func (w *Weights) Shape() (numOutputs, K int) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.data.Shape()
}

// Version is incremented by every successful Set or Update.
func (w *Weights) Version() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.version
}

// At returns w[i,k].
func (w *Weights) At(i, k int) (float64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.data.At(i, k)
}

// Set writes w[i,k] = v and bumps the version.
func (w *Weights) Set(i, k int, v float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.data.Set(i, k, v); err != nil {
		return err
	}
	w.version++

	return nil
}

// Update runs fn on a private copy of the tensor and installs the copy only
// if fn returns nil, so a failed update leaves the weights untouched.
// The write lock is held for the duration of fn.
func (w *Weights) Update(fn func(t *matrix.Dense) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.data.Clone().(*matrix.Dense)
	if err := fn(next); err != nil {
		return fmt.Errorf("%s: %w", opWeightsUpdate, err)
	}
	w.data = next
	w.version++

	return nil
}

// Snapshot returns a deep copy of the tensor together with its version.
func (w *Weights) Snapshot() (*matrix.Dense, uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.data.Clone().(*matrix.Dense), w.version
}
