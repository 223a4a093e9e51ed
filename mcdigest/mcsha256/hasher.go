package mcsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/mercel/mcdigest"
)

const HashSize = sha256.Size

// Hasher is a [mcdigest.Hasher] backed by SHA-256 hashes.
// This is the reference digest function.
type Hasher struct{}

var _ mcdigest.Hasher = Hasher{}

func (Hasher) Sum(dst []byte, parts ...[]byte) []byte {
	if len(parts) == 1 {
		// Common case for leaves; avoids the heap-allocated digest state.
		s := sha256.Sum256(parts[0])
		return append(dst, s[:]...)
	}

	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(dst)
}
