package mctree_test

import (
	"hash"
	"hash/fnv"

	"github.com/gordian-engine/mercel/mcdigest"
)

// fnv32Hasher is a simple, test-only hasher.
// It is not suitable for production because it uses a non-cryptographic hash,
// but its short output keeps test assertions easier to follow.
var fnv32Hasher = mcdigest.FromHashFactory(func() hash.Hash { return fnv.New32() })

func fnv32Hash(in string) []byte {
	h := fnv.New32()
	_, _ = h.Write([]byte(in))
	return h.Sum(nil)
}

// fnv32Leaves returns the fnv32 digest of each input string.
func fnv32Leaves(in ...string) [][]byte {
	out := make([][]byte, len(in))
	for i, s := range in {
		out[i] = fnv32Hash(s)
	}
	return out
}

// join concatenates digests for building expected values.
func join(ds ...[]byte) string {
	var s string
	for _, d := range ds {
		s += string(d)
	}
	return s
}
