package dendro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dendro"
	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/distance"
	"github.com/katalvlaran/dendro/kruskal"
)

// buildFourLeaves constructs the canonical four-leaf tree through the
// object wrapper.
func buildFourLeaves(t *testing.T) *dendro.Tree {
	t.Helper()
	edges := []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 2}}
	weights := core.NumericEdgeProperty{
		{U: 0, V: 1}: 1,
		{U: 2, V: 3}: 2,
		{U: 1, V: 2}: 3,
	}
	size := core.NumericNodeProperty{0: 1, 1: 1, 2: 1, 3: 1}

	tree := dendro.New()
	require.NoError(t, tree.BuildKruskal(edges, weights, size))
	return tree
}

// TestTree_UndefinedPreconditions: every query on an empty Tree fails
// with the matching precondition error.
func TestTree_UndefinedPreconditions(t *testing.T) {
	tree := dendro.New()

	_, err := tree.Root()
	assert.ErrorIs(t, err, dendro.ErrUndefinedParenthood)
	_, _, err = tree.RootPath(0)
	assert.ErrorIs(t, err, dendro.ErrUndefinedParenthood)
	_, err = tree.CommonAncestor(0, 1)
	assert.ErrorIs(t, err, dendro.ErrUndefinedParenthood)
	_, err = tree.EdgeDist(0, 1)
	assert.ErrorIs(t, err, dendro.ErrUndefinedParenthood)
	_, err = tree.Leaves(0)
	assert.ErrorIs(t, err, dendro.ErrUndefinedChildhood)
	_, _, err = tree.LeavesWhere(0, "cut")
	assert.ErrorIs(t, err, dendro.ErrUndefinedChildhood)
	_, err = tree.CutOnProperty("size", 1)
	assert.ErrorIs(t, err, dendro.ErrUndefinedParenthood)
}

// TestTree_BuildKruskal verifies the aggregate materializes atomically:
// node list, maps and both synthesized properties.
func TestTree_BuildKruskal(t *testing.T) {
	tree := buildFourLeaves(t)

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 6, 7, 8}, tree.Nodes)
	root, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(8), root)

	leaves, err := tree.Leaves(root)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, leaves)

	weights, err := tree.NumericProp(kruskal.WeightsProperty)
	require.NoError(t, err)
	assert.Equal(t, 3.0, weights[8])
}

// TestTree_Queries forwards ancestry and distance queries through the
// wrapper.
func TestTree_Queries(t *testing.T) {
	tree := buildFourLeaves(t)

	ca, err := tree.CommonAncestor(0, 3)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(8), ca)

	d, err := tree.EdgeDist(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, d)

	w, err := tree.WeightedDist(kruskal.WeightsProperty, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

// TestTree_UnknownProperty: every property-referencing operation fails
// on an unknown property name.
func TestTree_UnknownProperty(t *testing.T) {
	tree := buildFourLeaves(t)
	_, err := tree.WeightedDist("no-such-prop", 0, 1)
	assert.ErrorIs(t, err, core.ErrUnknownNodeProperty)
	_, err = tree.CutOnProperty("no-such-prop", 1)
	assert.ErrorIs(t, err, core.ErrUnknownNodeProperty)
	_, _, err = tree.LeavesWhere(8, "no-such-prop")
	assert.ErrorIs(t, err, core.ErrUnknownNodeProperty)
}

// TestTree_MarkCut stores cut membership as a boolean property and
// reads the filtered view back through LeavesWhere.
func TestTree_MarkCut(t *testing.T) {
	tree := buildFourLeaves(t)

	// Subtree sizes >= 2 authorize the internal spine only.
	require.NoError(t, tree.MarkCut("clusters", kruskal.SizeProperty, 2))

	root, err := tree.Root()
	require.NoError(t, err)
	leaves, warn, err := tree.LeavesWhere(root, "clusters")
	require.NoError(t, err)
	assert.Nil(t, warn)
	// 6 and 7 are the frontier: the deepest authorized nodes.
	assert.Equal(t, []core.NodeID{6, 7}, leaves)

	// Membership covers the whole node list, false included.
	prop := tree.NodeProps["clusters"]
	assert.Equal(t, false, prop[0])
	assert.Equal(t, true, prop[8])
}

// TestTree_CommonAncestor_Unrelated verifies error passthrough from the
// distance package.
func TestTree_CommonAncestor_Unrelated(t *testing.T) {
	tree := buildFourLeaves(t)
	_, err := tree.CommonAncestor(0, 99)
	assert.ErrorIs(t, err, distance.ErrUnrelatedNode)
}

// TestTree_SaveLoad round-trips the aggregate through a JSON file.
func TestTree_SaveLoad(t *testing.T) {
	tree := buildFourLeaves(t)
	require.NoError(t, tree.MarkCut("clusters", kruskal.SizeProperty, 2))

	path := t.TempDir() + "/tree.json"
	require.NoError(t, tree.Save(path))

	loaded, err := dendro.Load(path)
	require.NoError(t, err)
	assert.Equal(t, tree.Nodes, loaded.Nodes)
	assert.Equal(t, tree.Parents, loaded.Parents)
	assert.Equal(t, tree.Children, loaded.Children)

	// Queries work identically on the loaded tree.
	d, err := loaded.EdgeDist(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, d)

	leaves, warn, err := loaded.LeavesWhere(8, "clusters")
	require.NoError(t, err)
	assert.Nil(t, warn)
	assert.Equal(t, []core.NodeID{6, 7}, leaves)
}
