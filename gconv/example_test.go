// SPDX-License-Identifier: MIT

package gconv_test

import (
	"fmt"

	"github.com/katalvlaran/graphconv/gconv"
	"github.com/katalvlaran/graphconv/matrix"
)

// ExampleBuildFilters runs one filter with coefficients [1, 0] over an
// all-ones 3-node operator.
func ExampleBuildFilters() {
	L, _ := matrix.NewOnes(3, 3)
	w, _ := matrix.NewFromRows([][]float64{{1, 0}})

	filters, err := gconv.BuildFilters(w, L, 2, 1, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	Y, _ := gconv.ApplyFilters(filters, [][]float64{{1, 2, 3}})
	fmt.Print(Y)
	// Output:
	// [6, 6, 6]
}

// ExampleLayer shows an external update between two forward passes.
func ExampleLayer() {
	L, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	layer, _ := gconv.NewLayer(1, 2, 2, L, gconv.WithInitializer(gconv.Zeros()))
	X := [][]float64{{1, 0}, {3, 0}}

	_ = layer.Weights().Set(0, 1, 1) // g = T₁(L) = L
	Y, _ := layer.Forward(X)
	fmt.Print(Y)

	_ = layer.Weights().Set(0, 0, 1) // g = ones + L
	Y, _ = layer.Forward(X)
	fmt.Print(Y)
	// Output:
	// [0, 2]
	// [2, 4]
}
