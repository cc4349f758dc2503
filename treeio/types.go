// Package treeio defines the persisted aggregate and boundary errors.
package treeio

import (
	"errors"

	"github.com/katalvlaran/dendro/core"
)

// ErrInvalidNodeProps indicates a node-property collection that is not
// a name→map structure, carries a non-scalar value, or carries a node
// key that cannot be recovered.
var ErrInvalidNodeProps = errors.New("treeio: invalid node properties")

// ErrInvalidEdgeProps indicates an edge-property collection that is not
// a name→map structure, carries a non-scalar value, or carries an edge
// key that cannot be recovered.
var ErrInvalidEdgeProps = errors.New("treeio: invalid edge properties")

// Document is the persisted aggregate: the node list, the structural
// maps, and the named property collections. It is the wire-facing twin
// of the Tree object in the root package.
type Document struct {
	Nodes     []core.NodeID
	Parents   core.Parenthood
	Children  core.Childhood
	NodeProps core.NodeProperties
	EdgeProps core.EdgeProperties
}
