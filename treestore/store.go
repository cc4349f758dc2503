// Package treestore implements the Badger-backed dendrogram store.
package treestore

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/dendro/treeio"
)

// treePrefix namespaces tree records inside the key space, leaving room
// for future record kinds in the same store.
var treePrefix = []byte("tree/")

// Store is an embedded Badger store of named dendrograms.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at path. Options follow
// DefaultOptions unless overridden.
func Open(path string, opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dbOpts := badger.DefaultOptions(path)
	dbOpts.ReadOnly = o.ReadOnly
	dbOpts.SyncWrites = o.SyncWrites
	// Single-writer usage pattern; conflict detection is pure overhead.
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if o.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
		dbOpts.Dir = ""
		dbOpts.ValueDir = ""
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("treestore: open %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Put stores doc under name, overwriting any previous tree of that
// name. The record is the same JSON shape treeio writes to files.
func (s *Store) Put(name string, doc *treeio.Document) error {
	if name == "" {
		return ErrEmptyName
	}
	var buf bytes.Buffer
	if err := treeio.Encode(&buf, doc); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("treestore: put %q: %w", name, err)
	}
	return nil
}

// Get loads the tree stored under name.
func (s *Store) Get(name string) (*treeio.Document, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	var doc *treeio.Document
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			doc, err = treeio.Decode(bytes.NewReader(val))
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrTreeNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("treestore: get %q: %w", name, err)
	}
	return doc, nil
}

// List returns every stored tree name in ascending order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: treePrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			names = append(names, string(k[len(treePrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("treestore: list: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the tree stored under name. Deleting an absent name
// fails with ErrTreeNotFound.
func (s *Store) Delete(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %q", ErrTreeNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("treestore: delete %q: %w", name, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// key maps a tree name into the namespaced key space.
func key(name string) []byte {
	return append(append([]byte{}, treePrefix...), name...)
}
