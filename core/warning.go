package core

import "fmt"

// WarningKind discriminates the non-fatal conditions a traversal may
// report alongside a degraded-but-defined result.
type WarningKind int

const (
	// WarnIsolatedNode: the queried node appears in neither the parent
	// nor the child map; it was treated as its own root (or leaf).
	WarnIsolatedNode WarningKind = iota + 1

	// WarnExcludedRoot: the starting node of a filtered leaf expansion
	// does not satisfy the predicate; the result is empty.
	WarnExcludedRoot
)

// String names the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnIsolatedNode:
		return "isolated node"
	case WarnExcludedRoot:
		return "excluded root"
	default:
		return fmt.Sprintf("warning(%d)", int(k))
	}
}

// Warning carries a non-fatal condition back to the caller as a value.
// Operations that tolerate unusual-but-valid inputs (an isolated node is
// legitimately its own root) return a nil *Warning on the happy path and
// a populated one otherwise, leaving escalation to the caller.
type Warning struct {
	Kind WarningKind
	Node NodeID
}

// String renders the warning for diagnostics.
func (w *Warning) String() string {
	return fmt.Sprintf("%s: node %d", w.Kind, w.Node)
}
