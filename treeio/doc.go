// Package treeio is the persistence boundary: it serializes a
// dendrogram aggregate to a JSON record and recovers it, including the
// key-type recovery that JSON's string-only object keys make necessary.
//
// Format
//
//	A single JSON object with five fields:
//
//	  "nodes"     — array of node ids
//	  "parents"   — object: node id (text) → parent id
//	  "children"  — object: node id (text) → array of child ids
//	  "nodeprops" — object: property name → { node id (text) → value }
//	  "edgeprops" — object: property name → { "u,v" (text) → value }
//
//	All map keys are written as text. On load every node key is
//	re-parsed as a signed integer and every edge key as a "u,v" pair;
//	this is the only recovery logic the boundary performs. Property
//	values are JSON scalars (number, boolean or string).
//
//	Edge keys are written in canonical orientation (u <= v), so the
//	textual form does not depend on the order endpoints were supplied.
//
// Failure policy
//
//	Malformed property collections — a nodeprops/edgeprops field that
//	is not a name→map structure, a non-scalar value supplied for
//	writing, or an unparsable key — fail with ErrInvalidNodeProps or
//	ErrInvalidEdgeProps before any output is written. A structural key
//	(in parents or children) that does not parse as a node id fails
//	with core.ErrInvalidNodeID. Encode buffers the whole record and
//	writes it in one piece: no partial or corrupt output.
//
// Round-trip law
//
//	Decode(Encode(doc)) is structurally identical to doc, modulo the
//	numeric widening JSON imposes (all numbers load as float64).
package treeio
