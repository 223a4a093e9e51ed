package mercel

import (
	"slices"
	"strings"

	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/gordian-engine/mercel/mcdigest/mcblake2b"
	"github.com/gordian-engine/mercel/mcdigest/mcblake3"
	"github.com/gordian-engine/mercel/mcdigest/mcsha256"
	"github.com/gordian-engine/mercel/mcdigest/mcsha3"
)

// Names accepted by [HasherByName].
const (
	SHA256     = "sha256"
	SHA3_256   = "sha3-256"
	Keccak256  = "keccak256"
	BLAKE2b256 = "blake2b-256"
	BLAKE3     = "blake3"
)

// DefaultHasherName is used when a [CommitConfig] names no hasher.
const DefaultHasherName = SHA256

var hashersByName = map[string]mcdigest.Hasher{
	SHA256:     mcsha256.Hasher{},
	SHA3_256:   mcsha3.SHA3{},
	Keccak256:  mcsha3.Keccak{},
	BLAKE2b256: mcblake2b.Hasher{},
	BLAKE3:     mcblake3.Hasher{},
}

// HasherByName returns the bundled hasher with the given name,
// matched case-insensitively.
// Every bundled hasher produces 32-byte digests.
//
// An unrecognized name results in a [mcdigest.DigestUnavailableError].
func HasherByName(name string) (mcdigest.Hasher, error) {
	h, ok := hashersByName[strings.ToLower(name)]
	if !ok {
		return nil, mcdigest.DigestUnavailableError{Name: name}
	}
	return h, nil
}

// HasherNames returns the names accepted by [HasherByName], sorted.
func HasherNames() []string {
	names := make([]string, 0, len(hashersByName))
	for n := range hashersByName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
