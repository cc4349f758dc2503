// Package cut implements threshold-based pruning of dendrograms.
package cut

import (
	"fmt"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/traverse"
)

// OnProperty computes the threshold cut of the tree rooted above the
// parent map's smallest key (see traverse.RootAny). The root is always
// authorized; expansion proceeds to a child only if the child carries
// prop and prop[child] >= threshold. Returns every visited node in
// breadth-first order: the frontier plus all ancestors en route.
//
// A nil prop fails with core.ErrUnknownNodeProperty. An empty parent
// map yields an empty result.
//
// Complexity: O(S) time and memory, S = visited nodes.
func OnProperty(parents core.Parenthood, children core.Childhood, prop core.NumericNodeProperty, threshold float64) ([]core.NodeID, error) {
	root, ok := traverse.RootAny(parents)
	if !ok {
		return nil, nil
	}
	return OnPropertyFrom(children, root, prop, threshold)
}

// OnPropertyFrom computes the threshold cut of the subtree under an
// explicit root, for callers holding a multi-root forest.
func OnPropertyFrom(children core.Childhood, root core.NodeID, prop core.NumericNodeProperty, threshold float64) ([]core.NodeID, error) {
	if prop == nil {
		return nil, fmt.Errorf("%w: nil property for cut", core.ErrUnknownNodeProperty)
	}
	// The root is authorized unconditionally.
	authorized := []core.NodeID{root}
	queue := []core.NodeID{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range children[n] {
			v, ok := prop[c]
			if !ok || v < threshold {
				// Frontier boundary: the child stays outside the cut.
				continue
			}
			authorized = append(authorized, c)
			queue = append(queue, c)
		}
	}
	return authorized, nil
}
