// Package treestore persists named dendrograms in an embedded Badger
// key-value store, for offline pipelines that produce one tree per
// analysis run and revisit them later.
//
// What
//
//   - Open(path, opts...): open (or create) a store directory.
//   - Put(name, doc): store a treeio.Document under a name,
//     overwriting any previous tree of that name.
//   - Get(name): load a named tree; ErrTreeNotFound when absent.
//   - List(): all stored names, ascending.
//   - Delete(name), Close().
//
// Why
//
//	The JSON file written by treeio covers a single tree; a clustering
//	pipeline over many images or regions accumulates hundreds. Badger
//	gives them one crash-safe store with cheap point lookups, without
//	leaving the process.
//
// Values are the same JSON records treeio writes to files, so a tree
// extracted from the store and one loaded from a file are structurally
// identical.
//
// Options
//
//   - WithInMemory():  keep the store purely in memory (tests, scratch).
//   - WithReadOnly():  open an existing store without write access.
//   - WithSyncWrites(): fsync every write instead of batching.
//
// A Store is safe for concurrent use; Badger serializes transactions
// internally. The trees inside it are still plain maps once decoded:
// the usual single-writer rule applies after Get.
package treestore
