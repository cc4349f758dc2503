// Package dendro: the stateful Tree aggregate over the functional
// subpackages.
package dendro

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/cut"
	"github.com/katalvlaran/dendro/distance"
	"github.com/katalvlaran/dendro/kruskal"
	"github.com/katalvlaran/dendro/traverse"
	"github.com/katalvlaran/dendro/treeio"
)

// ErrUndefinedParenthood is returned by queries issued before the
// tree's parent map exists (neither built nor loaded).
var ErrUndefinedParenthood = errors.New("dendro: parenthood not defined; build or load the tree first")

// ErrUndefinedChildhood is returned by queries issued before the
// tree's child map exists (neither built nor loaded).
var ErrUndefinedChildhood = errors.New("dendro: childhood not defined; build or load the tree first")

// Tree is the dendrogram aggregate: the node list, the structural
// parent/child maps, and the named property collections. It exclusively
// owns its maps once constructed.
//
// Zero value usable via New; populate with BuildKruskal or Load.
// Not safe for concurrent mutation.
type Tree struct {
	Nodes     []core.NodeID
	Parents   core.Parenthood
	Children  core.Childhood
	NodeProps core.NodeProperties
	EdgeProps core.EdgeProperties
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Load reads a Tree from a JSON file written by Save.
func Load(path string) (*Tree, error) {
	doc, err := treeio.Load(path)
	if err != nil {
		return nil, err
	}
	t := New()
	t.fromDocument(doc)
	return t, nil
}

// BuildKruskal constructs the tree from graph edges via Kruskal's
// algorithm: the parent/child maps, the node list, and the synthesized
// "weights" and "size" node properties materialize together. On error
// the Tree is left untouched.
func (t *Tree) BuildKruskal(edges []core.Edge, weights core.NumericEdgeProperty, size core.NumericNodeProperty) error {
	res, err := kruskal.Build(edges, weights, size)
	if err != nil {
		return err
	}
	t.Parents = res.Parents
	t.Children = res.Children
	// Node list: every child of the parent map plus the roots, which
	// carry no parenthood entry of their own.
	nodes := make([]core.NodeID, 0, len(res.Parents)+1)
	for n := range res.Parents {
		nodes = append(nodes, n)
	}
	nodes = append(nodes, res.Roots()...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	t.Nodes = nodes
	t.NodeProps = core.NodeProperties{
		kruskal.WeightsProperty: res.NodeProps[kruskal.WeightsProperty].Generic(),
		kruskal.SizeProperty:    res.NodeProps[kruskal.SizeProperty].Generic(),
	}
	return nil
}

// Root returns the root of the tree, resolved from the smallest key of
// the parent map (see traverse.RootAny). For multi-root forests use
// RootOf with an explicit node.
func (t *Tree) Root() (core.NodeID, error) {
	if t.Parents == nil {
		return 0, ErrUndefinedParenthood
	}
	root, ok := traverse.RootAny(t.Parents)
	if !ok {
		return 0, fmt.Errorf("%w: parenthood is empty", ErrUndefinedParenthood)
	}
	return root, nil
}

// RootOf returns the root reachable from node.
func (t *Tree) RootOf(node core.NodeID) (core.NodeID, error) {
	if t.Parents == nil {
		return 0, ErrUndefinedParenthood
	}
	return traverse.Root(t.Parents, node), nil
}

// RootPath returns the chain [node, ..., root]. The warning is non-nil
// when node is isolated (its own single-element chain).
func (t *Tree) RootPath(node core.NodeID) ([]core.NodeID, *core.Warning, error) {
	if t.Parents == nil {
		return nil, nil, ErrUndefinedParenthood
	}
	path, warn := traverse.RootPath(t.Parents, node)
	return path, warn, nil
}

// Leaves returns the leaves of the subtree under node.
func (t *Tree) Leaves(node core.NodeID) ([]core.NodeID, error) {
	if t.Children == nil {
		return nil, ErrUndefinedChildhood
	}
	return traverse.Leaves(t.Children, node), nil
}

// LeavesWhere returns the leaves of the filtered view of the subtree
// under node, descending only through nodes the named boolean property
// marks true. The warning is non-nil when node itself fails the
// predicate (empty result).
func (t *Tree) LeavesWhere(node core.NodeID, propName string) ([]core.NodeID, *core.Warning, error) {
	if t.Children == nil {
		return nil, nil, ErrUndefinedChildhood
	}
	prop, err := t.boolProp(propName)
	if err != nil {
		return nil, nil, err
	}
	leaves, warn := traverse.LeavesWhere(t.Children, node, prop)
	return leaves, warn, nil
}

// CommonAncestor returns the lowest common ancestor of n1 and n2.
func (t *Tree) CommonAncestor(n1, n2 core.NodeID) (core.NodeID, error) {
	if t.Parents == nil {
		return 0, ErrUndefinedParenthood
	}
	return distance.CommonAncestor(t.Parents, n1, n2)
}

// EdgeDist returns the number of distinct nodes spanned by the path
// between n1 and n2 via their lowest common ancestor.
func (t *Tree) EdgeDist(n1, n2 core.NodeID) (int, error) {
	if t.Parents == nil {
		return 0, ErrUndefinedParenthood
	}
	return distance.EdgeDist(t.Parents, n1, n2)
}

// WeightedDist sums the named numeric node property over the path
// between n1 and n2, excluding the endpoints themselves.
func (t *Tree) WeightedDist(propName string, n1, n2 core.NodeID) (float64, error) {
	if t.Parents == nil {
		return 0, ErrUndefinedParenthood
	}
	prop, err := t.NumericProp(propName)
	if err != nil {
		return 0, err
	}
	return distance.WeightedDist(t.Parents, prop, n1, n2)
}

// CutOnProperty returns the authorized nodes of the threshold cut on
// the named numeric property: the frontier plus every ancestor visited
// en route, in breadth-first order.
func (t *Tree) CutOnProperty(propName string, threshold float64) ([]core.NodeID, error) {
	if t.Parents == nil {
		return nil, ErrUndefinedParenthood
	}
	if t.Children == nil {
		return nil, ErrUndefinedChildhood
	}
	prop, err := t.NumericProp(propName)
	if err != nil {
		return nil, err
	}
	return cut.OnProperty(t.Parents, t.Children, prop, threshold)
}

// MarkCut computes the threshold cut on propName and stores its
// membership as a new boolean node property named resultName: true for
// every authorized node, false for the rest of the node list.
func (t *Tree) MarkCut(resultName, propName string, threshold float64) error {
	authorized, err := t.CutOnProperty(propName, threshold)
	if err != nil {
		return err
	}
	member := make(core.BoolNodeProperty, len(t.Nodes))
	for _, n := range t.Nodes {
		member[n] = false
	}
	for _, n := range authorized {
		member[n] = true
	}
	t.SetNodeProperty(resultName, member.Generic())
	return nil
}

// SetNodeProperty stores a named node property on the aggregate,
// replacing any previous property of the same name.
func (t *Tree) SetNodeProperty(name string, prop core.NodeProperty) {
	if t.NodeProps == nil {
		t.NodeProps = make(core.NodeProperties, 1)
	}
	t.NodeProps[name] = prop
}

// NumericProp resolves a named node property as numeric. An absent
// name, or a value that is not numeric, fails with
// core.ErrUnknownNodeProperty.
func (t *Tree) NumericProp(name string) (core.NumericNodeProperty, error) {
	p, ok := t.NodeProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownNodeProperty, name)
	}
	return p.Numeric()
}

// boolProp resolves a named node property as boolean.
func (t *Tree) boolProp(name string) (core.BoolNodeProperty, error) {
	p, ok := t.NodeProps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownNodeProperty, name)
	}
	return p.Bool()
}

// Save writes the tree to a JSON file readable by Load.
func (t *Tree) Save(path string) error {
	return treeio.Save(path, t.document())
}

// document projects the aggregate onto the persistence shape.
func (t *Tree) document() *treeio.Document {
	return &treeio.Document{
		Nodes:     t.Nodes,
		Parents:   t.Parents,
		Children:  t.Children,
		NodeProps: t.NodeProps,
		EdgeProps: t.EdgeProps,
	}
}

// fromDocument adopts the persistence shape wholesale.
func (t *Tree) fromDocument(doc *treeio.Document) {
	t.Nodes = doc.Nodes
	t.Parents = doc.Parents
	t.Children = doc.Children
	t.NodeProps = doc.NodeProps
	t.EdgeProps = doc.EdgeProps
}
