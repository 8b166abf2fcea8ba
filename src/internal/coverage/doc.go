// Package coverage checks addresses against a generated allowlist.
//
// Lists are loaded from disk with LoadFile, which reads each line back with
// the line format it was written with. The networks are then indexed into a
// path-compressed prefix trie, so each query costs at most 32 steps
// regardless of list size.
package coverage
