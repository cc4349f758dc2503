// Package core: fundamental node, edge and relationship types.
package core

import "fmt"

// NodeID identifies a node in a dendrogram. Leaves keep the identity
// they had in the input graph; internal nodes receive synthesized ids
// from the Kruskal builder's allocator.
type NodeID int64

// Edge is an unordered pair of distinct nodes (U != V).
// Orientation carries no meaning: (1,2) and (2,1) denote the same edge.
type Edge struct {
	U NodeID
	V NodeID
}

// NewEdge constructs an Edge between u and v.
func NewEdge(u, v NodeID) Edge {
	return Edge{U: u, V: v}
}

// Reversed returns the same edge with its endpoints swapped.
// Useful for map lookups keyed by the opposite orientation.
func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U}
}

// Canonical returns the edge oriented so that U <= V.
// Property maps written by the persistence boundary key edges in this
// orientation, making the textual form independent of input order.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Parenthood maps a node to its immediate parent.
// A node absent from the map is a root of its component.
type Parenthood map[NodeID]NodeID

// Childhood maps a node to the ordered sequence of its direct children.
// A node absent from the map has no children: it is a leaf.
type Childhood map[NodeID][]NodeID
