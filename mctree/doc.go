// Package mctree builds binary Merkle trees over an ordered sequence of leaf digests.
//
// Each reduction round pairs node 2i with node 2i+1,
// hashing the concatenation of their digests (left first)
// to produce node i of the next level.
// When a level has an odd width, its last node has no partner;
// that node's digest is carried forward to the next level unchanged.
// It is never hashed with a copy of itself,
// so the roots differ from the more common duplicate-last convention
// for every tree that has an odd-width level.
//
// For example, five leaves reduce like this:
//
//	a    b    c    d    e
//	ab        cd        e
//	abcd                e
//	abcde
//
// [Build] returns only the root.
// A [Builder] additionally retains every level in a [*Tree],
// which can produce inclusion proofs for individual leaves.
package mctree
