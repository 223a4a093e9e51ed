// Package mcdigest defines the digest function boundary for mercel Merkle trees.
//
// Tree construction only ever calls [Hasher.Sum],
// so the tree logic does not depend on any particular hash algorithm.
// Concrete hashers live in subpackages (mcsha256, mcblake3, mcblake2b, mcsha3),
// and every one of them is checked against the mcdigesttest compliance suite.
package mcdigest
