// Package cut prunes a dendrogram at a numeric threshold: starting from
// the root, it keeps descending only while a node property stays at or
// above the threshold, and returns every node visited on the way.
//
// What
//
//   - OnProperty(parents, children, prop, threshold): breadth-first
//     frontier expansion from the tree root. A child is entered only if
//     it carries prop and prop[child] >= threshold. The result is the
//     full set of authorized nodes — the frontier plus every ancestor
//     visited en route — in visit order.
//   - OnPropertyFrom: the same expansion from an explicit root, for
//     multi-root forests.
//
// Why
//
//	Thresholding a merge tree on subtree size or merge weight is how a
//	dendrogram becomes a flat clustering: the frontier nodes are the
//	clusters at that scale, and the authorized set above them records
//	the visited hierarchy.
//
// Boundary behavior
//
//   - threshold below every property value: all nodes, root to leaves.
//   - threshold above every value carried by the root's descendants:
//     just the root.
//   - nil property map: core.ErrUnknownNodeProperty.
//   - empty parent map: empty result (an empty forest has no root).
//
// Complexity: O(S) time and memory, S = nodes visited.
package cut
