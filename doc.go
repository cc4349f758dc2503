// Package dendro builds and queries hierarchical cluster trees
// (dendrograms) derived from weighted graphs.
//
// A similarity graph over a population of elements is reduced, via
// Kruskal's minimum-spanning-tree algorithm, to a binary merge tree;
// traversal, ancestry, distance and threshold-cut primitives then let
// offline pipelines inspect that tree at every scale.
//
// The library is organized as free functions over plain maps, one
// subpackage per concern:
//
//	core/      — node, edge, parent/child and property types
//	unionfind/ — disjoint-set structure (cycle detection)
//	kruskal/   — merge-tree construction from weighted edge lists
//	traverse/  — root resolution, root paths, leaf enumeration
//	distance/  — common ancestor, edge and weighted distances
//	cut/       — threshold-based frontier cuts
//	treeio/    — JSON persistence of the aggregate
//	treestore/ — Badger-backed store of named dendrograms
//
// This root package ties them together in the Tree aggregate: a
// stateful wrapper owning one parent map, one child map and the named
// property collections, forwarding each call to the subpackage that
// implements it.
//
// Quick ASCII example — four leaves, three merges:
//
//	        8 (w=3, size=4)
//	       / \
//	      6   7
//	     /|   |\
//	    0 1   2 3
//
//	edges   := []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 2}}
//	weights := core.NumericEdgeProperty{{U: 0, V: 1}: 1, {U: 2, V: 3}: 2, {U: 1, V: 2}: 3}
//	size    := core.NumericNodeProperty{0: 1, 1: 1, 2: 1, 3: 1}
//
//	t := dendro.New()
//	_ = t.BuildKruskal(edges, weights, size)
//	root, _ := t.Root() // 8
//
// The Tree is read-only with respect to parent/child structure after
// construction; only named node properties may be added later (a cut
// result, for instance, is stored as a new boolean property). It is
// not safe for concurrent mutation: callers serialize access
// externally, e.g. one Tree per worker.
package dendro
