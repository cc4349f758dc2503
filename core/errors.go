package core

import "errors"

var (
	// ErrUnknownNodeProperty is returned when an operation references a
	// node property that is absent, either by name from a collection or
	// by node from an individual property map.
	ErrUnknownNodeProperty = errors.New("core: unknown node property")

	// ErrInvalidNodeID is returned on id-space violations: a persisted
	// key that cannot be recovered as a node id, or a synthesized id
	// colliding with an input node.
	ErrInvalidNodeID = errors.New("core: invalid node id")
)
