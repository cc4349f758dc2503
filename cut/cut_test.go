package cut_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/cut"
)

// fixture: the canonical four-leaf dendrogram with subtree sizes on
// every node (leaves 1, spine 2, root 4).
func fixture() (core.Parenthood, core.Childhood, core.NumericNodeProperty) {
	parents := core.Parenthood{0: 6, 1: 6, 2: 7, 3: 7, 6: 8, 7: 8}
	children := core.Childhood{8: {6, 7}, 6: {0, 1}, 7: {2, 3}}
	size := core.NumericNodeProperty{0: 1, 1: 1, 2: 1, 3: 1, 6: 2, 7: 2, 8: 4}
	return parents, children, size
}

// TestOnProperty_BelowEverything: a threshold under every value
// authorizes the whole tree, root to leaves.
func TestOnProperty_BelowEverything(t *testing.T) {
	parents, children, size := fixture()
	got, err := cut.OnProperty(parents, children, size, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{8, 6, 7, 0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("cut = %v; want %v", got, want)
	}
}

// TestOnProperty_AboveEverything: a threshold over every descendant
// value authorizes just the root.
func TestOnProperty_AboveEverything(t *testing.T) {
	parents, children, size := fixture()
	got, err := cut.OnProperty(parents, children, size, 100)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{8}; !reflect.DeepEqual(got, want) {
		t.Errorf("cut = %v; want %v", got, want)
	}
}

// TestOnProperty_Frontier: an intermediate threshold stops descent at
// the spine; the result is the frontier plus its ancestors.
func TestOnProperty_Frontier(t *testing.T) {
	parents, children, size := fixture()
	got, err := cut.OnProperty(parents, children, size, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{8, 6, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("cut = %v; want %v", got, want)
	}
}

// TestOnProperty_MissingChildEntry: a child with no property entry is a
// frontier boundary, not an error.
func TestOnProperty_MissingChildEntry(t *testing.T) {
	parents, children, _ := fixture()
	prop := core.NumericNodeProperty{6: 2, 7: 2} // leaves uncovered
	got, err := cut.OnProperty(parents, children, prop, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{8, 6, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("cut = %v; want %v", got, want)
	}
}

// TestOnProperty_NilProperty verifies the fatal missing-property case.
func TestOnProperty_NilProperty(t *testing.T) {
	parents, children, _ := fixture()
	if _, err := cut.OnProperty(parents, children, nil, 1); !errors.Is(err, core.ErrUnknownNodeProperty) {
		t.Errorf("want ErrUnknownNodeProperty, got %v", err)
	}
}

// TestOnProperty_EmptyForest: no parenthood entries, no root, no cut.
func TestOnProperty_EmptyForest(t *testing.T) {
	got, err := cut.OnProperty(core.Parenthood{}, core.Childhood{}, core.NumericNodeProperty{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("cut = %v; want empty", got)
	}
}

// TestOnPropertyFrom verifies the explicit-root variant on a subtree.
func TestOnPropertyFrom(t *testing.T) {
	_, children, size := fixture()
	got, err := cut.OnPropertyFrom(children, 6, size, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{6, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("cut = %v; want %v", got, want)
	}
}
