package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/kruskal"
)

// ExampleBuild merges four unit-size leaves into a dendrogram:
//
//	        8 (w=3)
//	       / \
//	      6   7
//	     /|   |\
//	    0 1   2 3
func ExampleBuild() {
	edges := []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 2}}
	weights := core.NumericEdgeProperty{
		{U: 0, V: 1}: 1,
		{U: 2, V: 3}: 2,
		{U: 1, V: 2}: 3,
	}
	size := core.NumericNodeProperty{0: 1, 1: 1, 2: 1, 3: 1}

	res, err := kruskal.Build(edges, weights, size)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	root := res.Roots()[0]
	fmt.Printf("root: %d\n", root)
	fmt.Printf("children: %v\n", res.Children[root])
	fmt.Printf("size: %v\n", res.NodeProps[kruskal.SizeProperty][root])
	fmt.Printf("weight: %v\n", res.NodeProps[kruskal.WeightsProperty][root])
	// Output:
	// root: 8
	// children: [6 7]
	// size: 4
	// weight: 3
}
