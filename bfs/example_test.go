// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphconv/bfs"
	"github.com/katalvlaran/graphconv/core"
)

// ExampleComponents counts the zero eigenvalues a Laplacian of g will have.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0.5)
	_ = g.AddEdge("C", "D", 2)
	comps, _ := bfs.Components(context.Background(), g)
	fmt.Println(len(comps), comps)
	// Output: 2 [[A B] [C D]]
}
