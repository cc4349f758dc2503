// Package kruskal implements merge-tree construction over weighted
// edge lists via Kruskal's algorithm.
package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/traverse"
	"github.com/katalvlaran/dendro/unionfind"
)

// SpanningEdges returns the edges Kruskal's algorithm retains from the
// input, paired index-for-index with their weights.
//
// Steps:
//  1. Copy edges and sort the copy by non-decreasing weight
//     (sort.SliceStable: equal weights keep their input order, so
//     tie-breaking is consistent within one run).
//  2. Scan in sorted order; a union-find structure skips every edge
//     whose endpoints already share a component (cycle edge). Edges
//     that merge two distinct components are retained in encounter
//     order.
//
// An edge with no entry in weights (in either orientation) fails with
// ErrMissingEdgeWeight before any work is done.
//
// Complexity: O(E log E + E α(V)). Memory: O(E + V).
func SpanningEdges(edges []core.Edge, weights core.NumericEdgeProperty) ([]core.Edge, []float64, error) {
	if len(edges) == 0 {
		return nil, nil, nil
	}

	// 1. Resolve every weight up front: a missing entry is fatal and
	//    must not leave a half-processed result behind.
	ws := make([]float64, len(edges))
	for i, e := range edges {
		w, err := weightOf(weights, e)
		if err != nil {
			return nil, nil, err
		}
		ws[i] = w
	}

	// 2. Sort an index permutation by weight, stable for determinism.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ws[order[i]] < ws[order[j]]
	})

	// 3. Filter through the union-find: keep only component-merging edges.
	components := unionfind.New()
	var (
		kEdges   []core.Edge
		kWeights []float64
	)
	for _, idx := range order {
		e := edges[idx]
		if components.Same(e.U, e.V) {
			// Cycle edge: endpoints already merged.
			continue
		}
		components.Union(e)
		kEdges = append(kEdges, e)
		kWeights = append(kWeights, ws[idx])
	}
	return kEdges, kWeights, nil
}

// Build constructs the full merge tree.
//
// Inputs: the edge list, a weight per edge, and a size per leaf
// appearing in the edge list.
//
// Steps:
//  1. Obtain the retained edges via SpanningEdges.
//  2. Seed the internal-node id counter at
//     max(2*|retained|, largest endpoint id + 1) — injective even for
//     sparse leaf numbering.
//  3. For each retained edge (u,v) with weight w, resolve the current
//     roots ru, rv of u and v under the parent map being built (not
//     the union-find, which only served cycle detection), synthesize a
//     fresh node m, and record:
//     parents[ru] = parents[rv] = m; children[m] = [ru, rv];
//     size[m] = size(ru) + size(rv); weights[m] = w.
//     A root's size comes from the size input when it is an original
//     leaf and from the previously synthesized value otherwise.
//
// Empty edges yield an all-empty Result. Disconnected input yields a
// multi-root forest (Result.Roots lists them).
//
// Complexity: O(E log E + E·H). Memory: O(E + V).
func Build(edges []core.Edge, weights core.NumericEdgeProperty, size core.NumericNodeProperty) (*Result, error) {
	// 1. Retained edges, in weight order.
	kEdges, kWeights, err := SpanningEdges(edges, weights)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Parents:  make(core.Parenthood, 2*len(kEdges)),
		Children: make(core.Childhood, len(kEdges)),
		NodeProps: map[string]core.NumericNodeProperty{
			WeightsProperty: make(core.NumericNodeProperty, len(kEdges)),
			SizeProperty:    make(core.NumericNodeProperty, len(kEdges)),
		},
	}
	if len(kEdges) == 0 {
		return res, nil
	}

	// 2. Seed the id allocator past both the conventional 2k offset and
	//    every input id.
	next := core.NodeID(2 * len(kEdges))
	for _, e := range kEdges {
		if e.U >= next {
			next = e.U + 1
		}
		if e.V >= next {
			next = e.V + 1
		}
	}

	weightProp := res.NodeProps[WeightsProperty]
	sizeProp := res.NodeProps[SizeProperty]

	// 3. Merge components bottom-up, one internal node per retained edge.
	for i, e := range kEdges {
		// Current roots under the parent map being built.
		ru := traverse.Root(res.Parents, e.U)
		rv := traverse.Root(res.Parents, e.V)

		su, err := subtreeSize(sizeProp, size, ru)
		if err != nil {
			return nil, err
		}
		sv, err := subtreeSize(sizeProp, size, rv)
		if err != nil {
			return nil, err
		}

		m := next
		next++

		res.Parents[ru] = m
		res.Parents[rv] = m
		res.Children[m] = []core.NodeID{ru, rv}
		sizeProp[m] = su + sv
		weightProp[m] = kWeights[i]
	}
	return res, nil
}

// subtreeSize resolves the size of a current root: the synthesized
// value for internal nodes, the caller-supplied leaf size otherwise.
// Leaf sizes are lazily copied into the synthesized property on first
// touch, so the output "size" property covers every merged node, leaves
// included.
func subtreeSize(synth, leaf core.NumericNodeProperty, root core.NodeID) (float64, error) {
	if s, ok := synth[root]; ok {
		return s, nil
	}
	s, ok := leaf[root]
	if !ok {
		return 0, fmt.Errorf("%w: node %d", ErrMissingLeafSize, root)
	}
	synth[root] = s
	return s, nil
}

// weightOf looks an edge up in weights, trying both orientations:
// edges are unordered pairs, the map key is not.
func weightOf(weights core.NumericEdgeProperty, e core.Edge) (float64, error) {
	if w, ok := weights[e]; ok {
		return w, nil
	}
	if w, ok := weights[e.Reversed()]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: edge %s", ErrMissingEdgeWeight, e)
}
