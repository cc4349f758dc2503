// Package distance answers ancestry and path-length queries over
// dendrogram parent maps: lowest common ancestor, edge distance, and
// property-weighted distance.
//
// What
//
//   - CommonAncestor(parents, n1, n2): the lowest common ancestor of
//     two nodes, found by linear intersection of their root chains.
//   - EdgeDist(parents, n1, n2): the number of distinct nodes spanned
//     by the two chains from the query nodes to their common ancestor.
//     Degenerate boundary: EdgeDist(n, n) == 1.
//   - WeightedDist(parents, prop, n1, n2): a numeric node property
//     summed over every node of the combined path except the two query
//     endpoints themselves (the common ancestor counts once).
//
// Why
//
//	In a merge tree, path-based distances between leaves measure how
//	many (or how heavy) merges separate two elements — the natural
//	multi-scale dissimilarity read off a dendrogram.
//
// Errors
//
//   - ErrUnrelatedNode — a query node absent from the parent map, or
//     two nodes in different components of a disconnected forest.
//   - core.ErrUnknownNodeProperty — a traversed node with no entry in
//     the property handed to WeightedDist.
//
// Complexity (H = height)
//
//   - Time:   O(H) per query
//   - Memory: O(H)
package distance
