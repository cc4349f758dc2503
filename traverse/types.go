// Package traverse defines sentinel errors for tree walks.
package traverse

import "errors"

// ErrNotAnAncestor is returned by RootPathMatch when the target node is
// not on the chain from the queried node to its root. The reference
// alternative — silently returning an incomplete chain — hides the
// mistake from the caller, so the condition is surfaced explicitly.
var ErrNotAnAncestor = errors.New("traverse: target is not an ancestor of node")
