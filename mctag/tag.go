// Package mctag computes and checks hash-based tags that bind a message to a Merkle root.
//
// A tag is the digest of the message followed by the root.
// There is no secret key involved:
// anyone holding the message and the root can compute a valid tag,
// so a tag provides integrity against accidental change
// but no authenticity or unforgeability.
package mctag

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/mercel/mcdigest"
)

// TagSize is the length of every tag, in bytes.
// Longer digests are truncated to this length.
const TagSize = 32

// Tag returns the digest of msg concatenated with root,
// truncated to [TagSize] bytes.
//
// It returns a [mcdigest.DigestUnavailableError] if h is nil
// or if h produces a digest shorter than TagSize.
func Tag(h mcdigest.Hasher, msg, root []byte) ([]byte, error) {
	if h == nil {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("no hasher provided"),
		}
	}

	d := h.Sum(make([]byte, 0, TagSize), msg, root)
	if len(d) < TagSize {
		return nil, mcdigest.DigestUnavailableError{
			Cause: fmt.Errorf(
				"hasher produced %d-byte digest; tags require at least %d bytes",
				len(d), TagSize,
			),
		}
	}

	return d[:TagSize:TagSize], nil
}

// Verify reports whether tag is the tag of msg under root.
// The comparison does not short-circuit on the first differing byte.
// A nil or short-output hasher never verifies.
func Verify(h mcdigest.Hasher, msg, tag, root []byte) bool {
	want, err := Tag(h, msg, root)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, tag) == 1
}

// VerifyAll checks tags[i] against msgs[i] for every i,
// returning a bitset where bit i is set when tag i verifies.
//
// It returns an error if the slices differ in length,
// or if h cannot produce tags at all.
func VerifyAll(h mcdigest.Hasher, msgs, tags [][]byte, root []byte) (*bitset.BitSet, error) {
	if len(msgs) != len(tags) {
		return nil, fmt.Errorf(
			"have %d messages but %d tags", len(msgs), len(tags),
		)
	}

	// Surface an unusable hasher as an error
	// rather than reporting every tag as invalid.
	if _, err := Tag(h, nil, root); err != nil {
		return nil, err
	}

	ok := bitset.MustNew(uint(len(msgs)))
	for i, msg := range msgs {
		if Verify(h, msg, tags[i], root) {
			ok.Set(uint(i))
		}
	}
	return ok, nil
}
