// Package traverse: root resolution and root-path computation.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/dendro/core"
)

// Root follows parent links from node until a node absent from parents
// is reached and returns it. A node never present in parents is its own
// root. Total over any forest-shaped map; never fails.
//
// Complexity: O(H) where H is the height above node.
func Root(parents core.Parenthood, node core.NodeID) core.NodeID {
	root := node
	for {
		p, ok := parents[root]
		if !ok {
			return root
		}
		root = p
	}
}

// RootAny returns the root reachable from the smallest key of parents.
// "Root of the tree" without a designated start node is only meaningful
// for single-rooted input; picking the minimum key keeps the selection
// deterministic across runs, unlike raw map iteration. Returns
// ok=false on an empty map: an empty forest has no root at all.
//
// Callers needing the root of a specific component must use Root.
func RootAny(parents core.Parenthood) (core.NodeID, bool) {
	if len(parents) == 0 {
		return 0, false
	}
	first := true
	var min core.NodeID
	for n := range parents {
		if first || n < min {
			min = n
			first = false
		}
	}
	return Root(parents, min), true
}

// RootPath returns the ordered chain [node, parent(node), ..., root],
// inclusive of both ends. A node not present in parents yields the
// single-element chain [node] together with a WarnIsolatedNode
// discriminant; isolated nodes are a valid, if unusual, input.
//
// Complexity: O(H) time and memory.
func RootPath(parents core.Parenthood, node core.NodeID) ([]core.NodeID, *core.Warning) {
	if _, ok := parents[node]; !ok {
		return []core.NodeID{node}, &core.Warning{Kind: core.WarnIsolatedNode, Node: node}
	}
	path := []core.NodeID{node}
	root := node
	for {
		p, ok := parents[root]
		if !ok {
			return path, nil
		}
		root = p
		path = append(path, root)
	}
}

// RootPathMatch returns the prefix of node's root path up to and
// including target. When target is never encountered on the chain the
// walk fails with ErrNotAnAncestor rather than handing back an
// undefined partial chain.
//
// RootPathMatch(parents, n, n) is the single-element chain [n].
//
// Complexity: O(H) time and memory.
func RootPathMatch(parents core.Parenthood, node, target core.NodeID) ([]core.NodeID, error) {
	path := []core.NodeID{node}
	cur := node
	for cur != target {
		p, ok := parents[cur]
		if !ok {
			// Walked off the top of the chain without meeting target.
			return nil, fmt.Errorf("%w: %d above %d", ErrNotAnAncestor, target, node)
		}
		cur = p
		path = append(path, cur)
	}
	return path, nil
}
