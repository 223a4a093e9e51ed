// Package mercel commits an ordered set of messages to a single Merkle root.
//
// The flow is:
//
//	mcsource.Source -> leaf digests -> mctree.Builder -> root -> mctag
//
// Messages come from a [mcsource.Source].
// Each message is hashed into a leaf digest,
// and the leaves are reduced pairwise, level by level, to one root digest.
// An unpaired node at the end of an odd-width level
// is carried to the next level unchanged rather than hashed with itself;
// see package mctree for details.
// Finally, the mctag package can bind any message to the root with a hash-based tag.
//
// The digest function is pluggable through [mcdigest.Hasher].
// SHA-256 is the default, and [HasherByName] resolves the other bundled hashers.
//
// Tags are not signatures.
// No key material is involved, so tags offer no authenticity guarantee.
package mercel
