// Package core: named property maps over nodes and edges.
package core

import "fmt"

// NumericNodeProperty maps nodes to numeric values, e.g. subtree sizes
// or merge weights synthesized by the Kruskal builder.
type NumericNodeProperty map[NodeID]float64

// BoolNodeProperty maps nodes to booleans, e.g. cut membership.
type BoolNodeProperty map[NodeID]bool

// SymbolicNodeProperty maps nodes to symbolic (string) values.
type SymbolicNodeProperty map[NodeID]string

// NodeProperty is a heterogeneous property map: values may be numeric,
// boolean or symbolic. It is the shape stored in a NodeProperties
// collection and round-tripped through the persistence boundary.
type NodeProperty map[NodeID]any

// NodeProperties is a named collection of node properties.
type NodeProperties map[string]NodeProperty

// NumericEdgeProperty maps edges to numeric values, e.g. the input
// dissimilarity weights consumed by the Kruskal builder.
type NumericEdgeProperty map[Edge]float64

// BoolEdgeProperty maps edges to booleans.
type BoolEdgeProperty map[Edge]bool

// SymbolicEdgeProperty maps edges to symbolic (string) values.
type SymbolicEdgeProperty map[Edge]string

// EdgeProperty is a heterogeneous edge property map.
type EdgeProperty map[Edge]any

// EdgeProperties is a named collection of edge properties.
type EdgeProperties map[string]EdgeProperty

// Numeric converts a heterogeneous property into a NumericNodeProperty.
// Accepted value types are float64, float32 and the signed integer
// kinds produced by builders or by JSON decoding. Any other value type
// fails with ErrUnknownNodeProperty naming the offending node.
func (p NodeProperty) Numeric() (NumericNodeProperty, error) {
	out := make(NumericNodeProperty, len(p))
	for n, v := range p {
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: node %d holds non-numeric value %T", ErrUnknownNodeProperty, n, v)
		}
		out[n] = f
	}
	return out, nil
}

// Bool converts a heterogeneous property into a BoolNodeProperty.
// Non-boolean values fail with ErrUnknownNodeProperty.
func (p NodeProperty) Bool() (BoolNodeProperty, error) {
	out := make(BoolNodeProperty, len(p))
	for n, v := range p {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: node %d holds non-boolean value %T", ErrUnknownNodeProperty, n, v)
		}
		out[n] = b
	}
	return out, nil
}

// Generic widens a NumericNodeProperty into a heterogeneous NodeProperty.
func (p NumericNodeProperty) Generic() NodeProperty {
	out := make(NodeProperty, len(p))
	for n, v := range p {
		out[n] = v
	}
	return out
}

// Generic widens a BoolNodeProperty into a heterogeneous NodeProperty.
func (p BoolNodeProperty) Generic() NodeProperty {
	out := make(NodeProperty, len(p))
	for n, v := range p {
		out[n] = v
	}
	return out
}

// Generic widens a NumericEdgeProperty into a heterogeneous EdgeProperty.
func (p NumericEdgeProperty) Generic() EdgeProperty {
	out := make(EdgeProperty, len(p))
	for e, v := range p {
		out[e] = v
	}
	return out
}

// asFloat coerces the numeric kinds a property value may legally hold.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
