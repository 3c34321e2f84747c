// Package libdiff compares field trees.
//
// Both trees are flattened into dotted pairs, each distinct pair is mapped
// to a rune and the two rune sequences are diffed, so the result is a
// minimal sequence of pair deletions and insertions that respects the order
// of fields.
package libdiff
