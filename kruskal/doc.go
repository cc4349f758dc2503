// Package kruskal builds binary merge trees (dendrograms) from weighted
// edge lists using Kruskal's minimum-spanning-tree algorithm.
//
// What
//
//   - SpanningEdges(edges, weights): the subsequence of edges retained
//     by Kruskal's algorithm — edges sorted by non-decreasing weight,
//     filtered through a union-find structure so that only edges merging
//     two distinct components survive, in encounter order.
//   - Build(edges, weights, size): the full tree construction. Each
//     retained edge synthesizes one internal node merging the current
//     roots of its endpoints; the result carries the parent map, the
//     child map, and two synthesized numeric node properties:
//     "weights" (merge weight) and "size" (subtree size).
//
// Why
//
//	Reducing a similarity graph over a population of elements to a
//	merge tree gives multi-scale structure: every internal node is a
//	cluster, its weight the dissimilarity at which the cluster formed,
//	its size the number of original elements below it.
//
// Two root notions, deliberately distinct
//
//	The union-find structure serves cycle detection only. Root
//	resolution while merging uses the parent map under construction,
//	whose "current root" evolves monotonically as merges are appended;
//	the union-find's internal representative choice is an
//	implementation detail. Do not conflate the two.
//
// Internal-node ids
//
//	Ids are allocated by a monotone counter seeded at
//	max(2*|retained edges|, largest input id + 1). The first term keeps
//	the conventional id layout when leaves are densely numbered
//	0..2k-1; the second makes the allocator injective even when they
//	are not.
//
// Edge cases
//
//   - No edges: an all-empty result, no error.
//   - Disconnected input: a multi-root forest; callers assuming a
//     single root must detect this themselves (see Result.Roots).
//   - An edge missing from weights, or a leaf root missing from size,
//     is a fatal lookup failure (ErrMissingEdgeWeight, ErrMissingLeafSize).
//
// Complexity (E = edges, V = endpoints)
//
//   - Time:   O(E log E) for the sort + O(E α(V)) for the filter
//     + O(E H) for parent-map root resolution (H = tree height)
//   - Memory: O(E + V)
package kruskal
