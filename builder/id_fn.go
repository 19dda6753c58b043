// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolNumberIDFn returns prefix+decimal IDs. Panics on a negative index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedIDFn returns zero-padded decimal IDs of the given width, so that
// lexicographic order (core.Graph.Vertices) matches index order.
func PaddedIDFn(width int) IDFn {
	return func(idx int) string { return fmt.Sprintf("%0*d", width, idx) }
}
