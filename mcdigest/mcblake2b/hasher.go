package mcblake2b

import (
	"bytes"
	"fmt"

	"github.com/gordian-engine/mercel/mcdigest"
	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size256

// Hasher is a [mcdigest.Hasher] backed by BLAKE2b-256 hashes.
// The zero value is the unkeyed hasher;
// use [New] for a keyed hasher.
type Hasher struct {
	key []byte
}

var _ mcdigest.Hasher = Hasher{}

// New returns a BLAKE2b-256 hasher using the given key.
// The key may be nil; if it is longer than 64 bytes,
// New returns a [mcdigest.DigestUnavailableError].
func New(key []byte) (Hasher, error) {
	if _, err := blake2b.New256(key); err != nil {
		return Hasher{}, mcdigest.DigestUnavailableError{
			Name:  "blake2b-256",
			Cause: err,
		}
	}

	return Hasher{key: bytes.Clone(key)}, nil
}

func (h Hasher) Sum(dst []byte, parts ...[]byte) []byte {
	d, err := blake2b.New256(h.key)
	if err != nil {
		panic(fmt.Errorf(
			"BUG: blake2b key was validated at construction but failed: %w", err,
		))
	}

	for _, p := range parts {
		_, _ = d.Write(p)
	}
	return d.Sum(dst)
}
