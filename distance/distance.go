// Package distance implements ancestry and path-distance queries.
package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/traverse"
)

// ErrUnrelatedNode is returned when an ancestry query involves a node
// absent from the parent map, or two nodes whose root chains share no
// node (disconnected forest components).
var ErrUnrelatedNode = errors.New("distance: nodes share no ancestor")

// CommonAncestor returns the lowest common ancestor of n1 and n2.
//
// Both nodes must be present in parents — a rootless or unknown node
// has no recorded ancestry and fails with ErrUnrelatedNode. The chains
// from each node to its root are intersected linearly: scanning from n1
// outward, the first node also on n2's chain is the answer. Chains that
// share no node (possible only in a disconnected forest) likewise fail
// with ErrUnrelatedNode.
//
// Complexity: O(H) time and memory.
func CommonAncestor(parents core.Parenthood, n1, n2 core.NodeID) (core.NodeID, error) {
	if _, ok := parents[n1]; !ok {
		return 0, fmt.Errorf("%w: node %d has no parenthood entry", ErrUnrelatedNode, n1)
	}
	if _, ok := parents[n2]; !ok {
		return 0, fmt.Errorf("%w: node %d has no parenthood entry", ErrUnrelatedNode, n2)
	}
	path1, _ := traverse.RootPath(parents, n1)
	path2, _ := traverse.RootPath(parents, n2)
	onChain2 := make(map[core.NodeID]bool, len(path2))
	for _, n := range path2 {
		onChain2[n] = true
	}
	// First hit scanning from n1 toward its root is the lowest.
	for _, n := range path1 {
		if onChain2[n] {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %d and %d lie in different components", ErrUnrelatedNode, n1, n2)
}

// EdgeDist returns the number of distinct nodes spanned by the chains
// from n1 and n2 to their lowest common ancestor — the size of the
// union of the two prefixes. For a node queried against itself the
// path degenerates to the single-node chain, counted once: exactly 1.
//
// Fails with ErrUnrelatedNode under the same conditions as
// CommonAncestor.
//
// Complexity: O(H) time and memory.
func EdgeDist(parents core.Parenthood, n1, n2 core.NodeID) (int, error) {
	span, err := pathUnion(parents, n1, n2)
	if err != nil {
		return 0, err
	}
	return len(span), nil
}

// WeightedDist sums prop over every node of the combined path between
// n1 and n2 via their lowest common ancestor, excluding the two query
// endpoints themselves. A traversed node with no entry in prop fails
// with core.ErrUnknownNodeProperty.
//
// Complexity: O(H) time and memory.
func WeightedDist(parents core.Parenthood, prop core.NumericNodeProperty, n1, n2 core.NodeID) (float64, error) {
	span, err := pathUnion(parents, n1, n2)
	if err != nil {
		return 0, err
	}
	var sum float64
	for n := range span {
		if n == n1 || n == n2 {
			continue
		}
		w, ok := prop[n]
		if !ok {
			return 0, fmt.Errorf("%w: node %d on path", core.ErrUnknownNodeProperty, n)
		}
		sum += w
	}
	return sum, nil
}

// pathUnion collects the distinct nodes of the two chains from n1 and
// n2 up to and including their lowest common ancestor.
func pathUnion(parents core.Parenthood, n1, n2 core.NodeID) (map[core.NodeID]bool, error) {
	ca, err := CommonAncestor(parents, n1, n2)
	if err != nil {
		return nil, err
	}
	// The ancestor sits on both chains, so neither match can fail.
	p1, err := traverse.RootPathMatch(parents, n1, ca)
	if err != nil {
		return nil, err
	}
	p2, err := traverse.RootPathMatch(parents, n2, ca)
	if err != nil {
		return nil, err
	}
	span := make(map[core.NodeID]bool, len(p1)+len(p2))
	for _, n := range p1 {
		span[n] = true
	}
	for _, n := range p2 {
		span[n] = true
	}
	return span, nil
}
