// SPDX-License-Identifier: MIT

package gconv

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates incompatible dimensions between weights, operator,
	// filters and signals, or an empty signal batch.
	ErrShape = errors.New("gconv: shape error")

	// ErrValue indicates a non-positive size parameter or an empty filter set.
	ErrValue = errors.New("gconv: invalid value")
)

const (
	opBuildFilters    = "BuildFilters"
	opApplyFilters    = "ApplyFilters"
	opBatchFromMatrix = "BatchFromMatrix"
	opNewWeights      = "NewWeights"
	opWeightsFromRows = "WeightsFromRows"
	opWeightsUpdate   = "Weights.Update"
	opNewLayer        = "NewLayer"
	opForward         = "Layer.Forward"
)

// gconvErrorf tags cause with op and an error class; both remain reachable
// through errors.Is.
func gconvErrorf(op string, class, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, class)
	}

	return fmt.Errorf("%s: %w: %w", op, class, cause)
}
