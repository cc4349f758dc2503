// Package treestore defines store options and sentinel errors.
package treestore

import "errors"

// ErrTreeNotFound is returned by Get and Delete when no tree is stored
// under the requested name.
var ErrTreeNotFound = errors.New("treestore: tree not found")

// ErrEmptyName is returned when a tree name is empty; names key the
// store and must be non-empty.
var ErrEmptyName = errors.New("treestore: empty tree name")

// StoreOptions configures Open. Use DefaultOptions() for a durable
// on-disk store with batched writes.
type StoreOptions struct {
	// InMemory keeps all data in memory; Path is ignored.
	InMemory bool

	// ReadOnly opens an existing store without write access.
	ReadOnly bool

	// SyncWrites fsyncs every write instead of batching.
	SyncWrites bool
}

// Option configures StoreOptions.
type Option func(*StoreOptions)

// DefaultOptions returns a StoreOptions for a durable on-disk store:
// writable, batched writes.
func DefaultOptions() StoreOptions {
	return StoreOptions{}
}

// WithInMemory keeps the store purely in memory.
func WithInMemory() Option {
	return func(o *StoreOptions) {
		o.InMemory = true
	}
}

// WithReadOnly opens the store without write access.
func WithReadOnly() Option {
	return func(o *StoreOptions) {
		o.ReadOnly = true
	}
}

// WithSyncWrites fsyncs every write.
func WithSyncWrites() Option {
	return func(o *StoreOptions) {
		o.SyncWrites = true
	}
}
