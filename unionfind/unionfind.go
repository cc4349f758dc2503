// Package unionfind implements the disjoint-set structure backing
// Kruskal cycle detection.
package unionfind

import "github.com/katalvlaran/dendro/core"

// UFDS is a disjoint-set forest over core.NodeID elements with path
// compression and union by size. The zero value is not usable; call New.
//
// Elements are registered lazily: the first Root, Union or Same touching
// a node makes it a singleton component. Operations never fail.
type UFDS struct {
	// parent maps each registered node to its parent in the DSU forest;
	// a root maps to itself.
	parent map[core.NodeID]core.NodeID
	// size tracks component sizes at the roots, steering unions.
	size map[core.NodeID]int
}

// New returns an empty union-find structure.
func New() *UFDS {
	return &UFDS{
		parent: make(map[core.NodeID]core.NodeID),
		size:   make(map[core.NodeID]int),
	}
}

// make registers n as a singleton component if it is unseen.
func (u *UFDS) make(n core.NodeID) {
	if _, ok := u.parent[n]; !ok {
		u.parent[n] = n
		u.size[n] = 1
	}
}

// Root returns the representative of n's component, registering n on
// first sight. Path compression: every node on the walked chain is
// re-pointed directly at the root.
func (u *UFDS) Root(n core.NodeID) core.NodeID {
	u.make(n)
	// Walk to the root.
	root := n
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Second pass: compress the chain onto the root.
	for u.parent[n] != root {
		n, u.parent[n] = u.parent[n], root
	}
	return root
}

// Union merges the components containing the edge's endpoints and
// returns the surviving representative. Union by size: the smaller
// component is attached under the larger one; on ties the first
// endpoint's representative survives. Uniting an already-joined pair
// is a no-op returning the shared representative.
func (u *UFDS) Union(e core.Edge) core.NodeID {
	ru := u.Root(e.U)
	rv := u.Root(e.V)
	if ru == rv {
		return ru
	}
	// Attach the smaller tree under the larger root.
	if u.size[ru] < u.size[rv] {
		ru, rv = rv, ru
	}
	u.parent[rv] = ru
	u.size[ru] += u.size[rv]
	delete(u.size, rv)
	return ru
}

// Same reports whether a and b currently share a component.
func (u *UFDS) Same(a, b core.NodeID) bool {
	return u.Root(a) == u.Root(b)
}

// Len returns the number of registered elements.
func (u *UFDS) Len() int {
	return len(u.parent)
}
