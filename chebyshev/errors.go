// SPDX-License-Identifier: MIT

package chebyshev

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when X is nil or not square.
	// The underlying matrix sentinel (matrix.ErrNonSquare, matrix.ErrNilMatrix)
	// stays reachable through errors.Is.
	ErrShape = errors.New("chebyshev: shape error")

	// ErrValue is returned for a negative degree or a non-positive term count.
	ErrValue = errors.New("chebyshev: invalid value")
)

// Method tags used as error prefixes.
const (
	methodT         = "T"
	methodBasis     = "Basis"
	methodRecursive = "Recursive"
	methodCombine   = "Combine"
)

// chebErrorf tags cause with a method name and an error class, so that both
// errors.Is(err, class) and errors.Is(err, cause) hold.
func chebErrorf(method string, class, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", method, class)
	}

	return fmt.Errorf("%s: %w: %w", method, class, cause)
}
