package mctree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Tree is a fully built Merkle tree with every level retained.
// Create one with [*Builder.Tree] or [*Builder.TreeFromMessages].
//
// Slices returned from Tree methods reference the tree's own memory
// and must not be modified.
type Tree struct {
	// levels[0] is the leaf digests in input order,
	// and the final level holds only the root.
	levels [][][]byte

	// Bit i is set when levels[i] had an odd width
	// and its last node was carried into levels[i+1].
	carried *bitset.BitSet
}

// Root returns the root digest.
func (t *Tree) Root() []byte {
	return t.levels[len(t.levels)-1][0]
}

// NumLeaves reports the number of leaves the tree was built from.
func (t *Tree) NumLeaves() int {
	return len(t.levels[0])
}

// Height reports the number of levels, including the leaf level and the root level.
// A single-leaf tree has height 1.
func (t *Tree) Height() int {
	return len(t.levels)
}

// Level returns the digests at the given level,
// where level 0 is the leaves and level Height()-1 is the root.
func (t *Tree) Level(i int) [][]byte {
	if i < 0 || i >= len(t.levels) {
		panic(fmt.Errorf(
			"BUG: attempted to get level %d; must be in range [0, %d)",
			i, len(t.levels),
		))
	}
	return t.levels[i]
}

// Leaf returns the digest of the leaf at the given index.
func (t *Tree) Leaf(idx int) []byte {
	if idx < 0 || idx >= t.NumLeaves() {
		panic(fmt.Errorf(
			"BUG: attempted to get leaf at index %d; must be in range [0, %d)",
			idx, t.NumLeaves(),
		))
	}
	return t.levels[0][idx]
}

// CarriedLevels returns a new bitset where bit i is set
// when level i had an odd width, so that its last node
// was carried to level i+1 unchanged.
func (t *Tree) CarriedLevels() *bitset.BitSet {
	return t.carried.Clone()
}

// Proof returns the inclusion proof for the leaf at the given index.
//
// The sibling digests in the proof reference the tree's memory.
func (t *Tree) Proof(leafIdx int) Proof {
	if leafIdx < 0 || leafIdx >= t.NumLeaves() {
		panic(fmt.Errorf(
			"BUG: attempted to get proof for leaf %d; must be in range [0, %d)",
			leafIdx, t.NumLeaves(),
		))
	}

	p := Proof{
		LeafIndex: leafIdx,
		LeafCount: t.NumLeaves(),
	}

	pos := leafIdx
	for _, level := range t.levels[:len(t.levels)-1] {
		w := len(level)
		if pos != w-1 || w&1 == 0 {
			// The node has a partner at this level.
			// XOR with 1 flips between the left and right positions.
			p.Siblings = append(p.Siblings, level[pos^1])
		}
		pos >>= 1
	}

	return p
}
