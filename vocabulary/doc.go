// Package vocabulary implements the bidirectional interning table that maps
// names (node names, node type names, edge type names) to dense integer ids
// and back.
//
// A Vocabulary owns the only string data on the hot path of the engine: once
// built, every algorithm works on ids and only front ends translate back.
//
// Lifecycle:
//
//   - Insert keeps both directions in sync and reports whether the name was
//     already present.
//   - UncheckedInsert is the bulk-loading fast path: it skips the duplicate
//     check and only updates the forward map; BuildReverseMapping must be
//     called before Name is used.
//   - After BuildReverseMapping the forward and reverse maps are mutual
//     inverses and ids are dense in [0, Len()).
//
// A Vocabulary is not safe for concurrent mutation. Concurrent reads of a
// built vocabulary are safe.
package vocabulary
