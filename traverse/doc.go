// Package traverse provides the basic walk primitives over dendrogram
// parent/child maps: root resolution, root paths, and leaf enumeration.
//
// What
//
//   - Root(parents, node): follow parent links until a node absent from
//     the map is reached. A node never present in the map is trivially
//     its own root. Total: never fails.
//   - RootAny(parents): the root reachable from the smallest key of the
//     map — a deterministic stand-in for "any root" when the caller does
//     not care which component is inspected.
//   - RootPath(parents, node): the ordered chain [node, parent(node),
//     ..., root], inclusive of both ends. An isolated node yields the
//     single-element chain plus a WarnIsolatedNode discriminant.
//   - RootPathMatch(parents, node, target): the prefix of the root path
//     up to and including target. If target is never met on the chain,
//     the walk fails with ErrNotAnAncestor instead of returning an
//     undefined partial chain.
//   - Leaves(children, node): breadth-first expansion collecting every
//     descendant with no recorded children.
//   - LeavesWhere(children, node, prop): the same expansion gated by a
//     boolean property; descent stops at nodes failing the predicate,
//     which surface as synthetic leaves of the filtered view.
//
// Why
//
//	Every higher-level query (common ancestor, distances, threshold
//	cuts) is a composition of these walks; keeping them as free
//	functions over plain maps lets them serve both builder output and
//	externally supplied trees.
//
// Determinism
//
//	Child order is preserved by the breadth-first expansions, and
//	RootAny selects by smallest key, so results are reproducible
//	across runs regardless of map iteration order.
//
// Complexity (H = height, S = subtree size)
//
//   - Root, RootPath, RootPathMatch: O(H) time, O(H) memory for paths
//   - Leaves, LeavesWhere: O(S) time and memory
//
// Errors
//
//   - ErrNotAnAncestor — RootPathMatch target not on the chain.
//
// Degraded inputs are reported as *core.Warning values, never logged.
package traverse
