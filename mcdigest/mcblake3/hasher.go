package mcblake3

import (
	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/zeebo/blake3"
)

// HashSize is the default BLAKE3 output length, in bytes.
const HashSize = 32

// Hasher is a [mcdigest.Hasher] backed by 256-bit BLAKE3 hashes.
type Hasher struct{}

var _ mcdigest.Hasher = Hasher{}

func (Hasher) Sum(dst []byte, parts ...[]byte) []byte {
	h := blake3.New()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(dst)
}
