// Package traverse: breadth-first leaf enumeration, plain and filtered.
package traverse

import "github.com/katalvlaran/dendro/core"

// Leaves performs a breadth-first expansion from node over the child
// map and returns every reached node with no recorded children, in
// visit order. A node absent from children is itself a leaf, yielding
// the single-element result [node].
//
// Complexity: O(S) where S is the subtree size under node.
func Leaves(children core.Childhood, node core.NodeID) []core.NodeID {
	var leaves []core.NodeID
	queue := []core.NodeID{node}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		kids, ok := children[n]
		if !ok || len(kids) == 0 {
			leaves = append(leaves, n)
			continue
		}
		queue = append(queue, kids...)
	}
	return leaves
}

// LeavesWhere performs the same expansion gated by a boolean property:
// descent continues only through nodes whose prop entry is true.
//
// Emission rules for a visited node n:
//   - prop[n] false or missing: n is a synthetic leaf of the filtered
//     view (descent stopped at its parent's level).
//   - n has no recorded children: n is a genuine leaf.
//   - none of n's children qualify: n is the deepest qualifying node on
//     its branch and is emitted itself.
//   - otherwise all children are enqueued; non-qualifying ones surface
//     as synthetic leaves when visited.
//
// The starting node must satisfy the predicate: if it does not, the
// result is empty and a WarnExcludedRoot discriminant is returned.
//
// Complexity: O(S) time and memory.
func LeavesWhere(children core.Childhood, node core.NodeID, prop core.BoolNodeProperty) ([]core.NodeID, *core.Warning) {
	if !prop[node] {
		return nil, &core.Warning{Kind: core.WarnExcludedRoot, Node: node}
	}
	var leaves []core.NodeID
	queue := []core.NodeID{node}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !prop[n] {
			leaves = append(leaves, n)
			continue
		}
		kids, ok := children[n]
		if !ok || len(kids) == 0 {
			leaves = append(leaves, n)
			continue
		}
		qualifying := false
		for _, c := range kids {
			if prop[c] {
				qualifying = true
				break
			}
		}
		if !qualifying {
			leaves = append(leaves, n)
			continue
		}
		queue = append(queue, kids...)
	}
	return leaves, nil
}
