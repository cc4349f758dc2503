// Package kruskal defines the builder's result shape and sentinel errors.
package kruskal

import (
	"errors"
	"sort"

	"github.com/katalvlaran/dendro/core"
)

// WeightsProperty names the synthesized merge-weight node property.
const WeightsProperty = "weights"

// SizeProperty names the synthesized subtree-size node property.
const SizeProperty = "size"

// ErrMissingEdgeWeight indicates an input edge with no entry in the
// weights map. Every edge must carry a weight; this is fatal.
var ErrMissingEdgeWeight = errors.New("kruskal: edge missing from weights")

// ErrMissingLeafSize indicates a leaf reached during merging with no
// entry in the size map. Every leaf appearing in the edge list must
// carry a size; this is fatal.
var ErrMissingLeafSize = errors.New("kruskal: leaf missing from size")

// Result is the output of Build: the parent and child maps of the merge
// forest plus the synthesized node properties, keyed WeightsProperty
// and SizeProperty. All maps materialize together; a failed Build
// yields no partial Result.
type Result struct {
	Parents   core.Parenthood
	Children  core.Childhood
	NodeProps map[string]core.NumericNodeProperty
}

// Roots returns every rootless node of the forest in ascending order:
// the single tree root for connected input, one root per component
// otherwise. Computed over the nodes known to the child map and the
// parent map's values.
func (r *Result) Roots() []core.NodeID {
	seen := make(map[core.NodeID]bool, len(r.Children))
	var roots []core.NodeID
	for n := range r.Children {
		if _, ok := r.Parents[n]; !ok && !seen[n] {
			seen[n] = true
			roots = append(roots, n)
		}
	}
	// An edgeless single node never enters Children; nothing to add
	// here, since Build output only contains merged nodes.
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	return roots
}
