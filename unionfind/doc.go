// Package unionfind provides a disjoint-set (union-find) structure over
// dendrogram nodes, used by the Kruskal builder for cycle detection.
//
// What
//
//   - UFDS: a forest of components over core.NodeID elements.
//   - Root(n): representative of n's component. Nodes are registered
//     implicitly on first sight, so every operation is total: a fresh
//     node is simply its own singleton component.
//   - Union(e): merges the components containing the edge's endpoints
//     and returns the surviving representative.
//   - Same(a, b): true when a and b share a component.
//
// Why
//
//	Kruskal's algorithm must skip every edge whose endpoints already
//	share a component. The UFDS answers that query in amortized
//	near-constant time; which endpoint's representative survives a
//	union is an internal detail no caller may rely on.
//
// Determinism
//
//	Union by size with ties resolved toward the first argument's root,
//	so a fixed operation sequence always yields the same representatives.
//
// Complexity (N = elements, M = operations)
//
//   - Time:   O(M α(N)) with path compression + union by size
//   - Memory: O(N)
package unionfind
