// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not nil ok", matrix.ValidateNotNil(sq), nil},
		{"nil interface", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"typed nil", matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare(sq), nil},
		{"square bad", matrix.ValidateSquare(rect), matrix.ErrNonSquare},
		{"square non-nil nil", matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix},
		{"same shape bad", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"binary same shape nil", matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix},
		{"mul compatible", matrix.ValidateMulCompatible(sq, rect), nil},
		{"mul incompatible", matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch},
		{"vec len", matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch},
		{"vec nil", matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix},
		{"symmetric zero", matrix.ValidateSymmetric(sq, 0), nil},
		{"symmetric rect", matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare},
		{"finite", matrix.ValidateFinite(sq), nil},
	}
	for _, tc := range tests {
		if tc.want == nil {
			require.NoError(t, tc.err, tc.name)
			continue
		}
		require.ErrorIs(t, tc.err, tc.want, tc.name)
	}

	asym := MustFromRows(t, [][]float64{{0, 1}, {1.5, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.1), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.5))
	require.NoError(t, matrix.ValidateSymmetric(hide{asym}, -0.5), "negative tol is treated as |tol|")
}
