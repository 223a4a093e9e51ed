// Package mcsha3 provides Keccak-family hashers:
// the standardized SHA3-256, and the legacy Keccak-256
// that predates the final padding rule and is common in Ethereum tooling.
package mcsha3

import (
	"github.com/gordian-engine/mercel/mcdigest"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// SHA3 is a [mcdigest.Hasher] backed by SHA3-256 hashes.
type SHA3 struct{}

// Keccak is a [mcdigest.Hasher] backed by legacy Keccak-256 hashes.
type Keccak struct{}

var (
	_ mcdigest.Hasher = SHA3{}
	_ mcdigest.Hasher = Keccak{}
)

func (SHA3) Sum(dst []byte, parts ...[]byte) []byte {
	h := sha3.New256()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(dst)
}

func (Keccak) Sum(dst []byte, parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(dst)
}
