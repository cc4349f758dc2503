// Package core defines the shared data model for dendrograms:
// node identifiers, edges, parent/child maps, and named property maps.
//
// What
//
//   - NodeID: integer identity of a node. Leaves are pre-existing input
//     elements; internal nodes are synthesized merge points.
//   - Edge: an unordered pair of distinct NodeIDs.
//   - Parenthood: map from node to its immediate parent. A node absent
//     from the map is, by definition, a root.
//   - Childhood: map from node to the ordered sequence of its direct
//     children. Builder-synthesized nodes always carry exactly two
//     children; externally supplied trees may use any arity.
//   - Typed property maps (NumericNodeProperty, BoolNodeProperty,
//     SymbolicNodeProperty and their edge analogues) for algorithm
//     inputs, and heterogeneous NodeProperty/EdgeProperty (value type
//     any) for named collections that cross the persistence boundary.
//   - Warning: a non-fatal discriminant returned by traversals that
//     tolerate degraded inputs (e.g. an isolated node is its own root).
//
// Why
//
//	Every algorithm package (kruskal, traverse, distance, cut) and the
//	persistence boundary (treeio) operate on these maps directly; the
//	tree aggregate in the root package owns one instance of each.
//
// Invariants
//
//   - Following Parenthood links from any node terminates: the structure
//     is a forest, never cyclic.
//   - Parenthood and Childhood are mutually consistent: if children[p]
//     contains c, then parents[c] == p.
//
// Warnings are values, not logs: callers receive a *Warning alongside
// the degraded-but-defined result and decide whether to escalate.
package core
