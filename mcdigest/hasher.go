package mcdigest

import "hash"

// Hasher is the digest function used for every node of a Merkle tree.
// Leaves are hashed from raw message bytes,
// and inner nodes are hashed from the concatenation of their children's digests.
//
// Sum appends the digest of the concatenation of parts to dst
// and returns the extended slice, in the manner of [hash.Hash.Sum].
// The parts are concatenated as-is: no separator and no length prefix.
// Passing parts separately must produce the same output
// as passing their concatenation as a single part.
//
// Implementations must return the same fixed-width output for every input,
// must not retain references to dst or to any part,
// and must be safe to call concurrently.
type Hasher interface {
	Sum(dst []byte, parts ...[]byte) []byte
}

// HasherFunc adapts a plain function to the [Hasher] interface.
type HasherFunc func(dst []byte, parts ...[]byte) []byte

func (f HasherFunc) Sum(dst []byte, parts ...[]byte) []byte {
	return f(dst, parts...)
}

// FromHashFactory returns a [Hasher] that creates a new [hash.Hash]
// through newHash for every Sum call.
// Since no hash state is shared between calls,
// the returned Hasher is safe for concurrent use
// as long as newHash itself is.
func FromHashFactory(newHash func() hash.Hash) Hasher {
	return HasherFunc(func(dst []byte, parts ...[]byte) []byte {
		h := newHash()
		for _, p := range parts {
			_, _ = h.Write(p)
		}
		return h.Sum(dst)
	})
}
