package mctree

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"
	"github.com/gordian-engine/mercel/mcdigest"
)

// Proof is an inclusion proof for a single leaf.
//
// The shape of the path from leaf to root is fully determined
// by LeafIndex and LeafCount:
// at each level the node either has a partner,
// or it is the unpaired last node of an odd-width level
// and is carried upward without hashing.
// Siblings therefore only holds digests for the levels with a partner,
// ordered from the leaf level upward.
type Proof struct {
	LeafIndex int
	LeafCount int

	Siblings [][]byte
}

// Path returns a bitset aligned with p.Siblings,
// where bit k is set when Siblings[k] is the left operand
// (that is, the proven node is the right child at that step).
//
// Path returns an [InvalidProofError] if the index or count is out of range,
// or if the number of siblings does not match the tree shape.
func (p Proof) Path() (*bitset.BitSet, error) {
	left, n, err := proofShape(p.LeafIndex, p.LeafCount)
	if err != nil {
		return nil, err
	}
	if n != len(p.Siblings) {
		return nil, InvalidProofError{
			Reason: fmt.Sprintf(
				"leaf %d of %d needs %d siblings, proof has %d",
				p.LeafIndex, p.LeafCount, n, len(p.Siblings),
			),
		}
	}
	return left, nil
}

// proofShape walks the levels of a tree with leafCount leaves
// from the given leaf up to the root.
// It returns the number of sibling digests a proof must have,
// and a bitset where bit k is set when the k-th sibling is on the left.
func proofShape(leafIdx, leafCount int) (left *bitset.BitSet, nSiblings int, err error) {
	if leafCount <= 0 {
		return nil, 0, InvalidProofError{
			Reason: fmt.Sprintf("leaf count must be positive (got %d)", leafCount),
		}
	}
	if leafIdx < 0 || leafIdx >= leafCount {
		return nil, 0, InvalidProofError{
			Reason: fmt.Sprintf(
				"leaf index %d out of range [0, %d)", leafIdx, leafCount,
			),
		}
	}

	left = bitset.MustNew(0)
	for pos, w := leafIdx, leafCount; w > 1; pos, w = pos>>1, (w+1)>>1 {
		if pos == w-1 && w&1 == 1 {
			// Carried.
			continue
		}
		if pos&1 == 1 {
			left.Set(uint(nSiblings))
		}
		nSiblings++
	}

	return left, nSiblings, nil
}

// VerifyProof reports whether leafDigest, combined with the proof's siblings,
// reduces to root.
//
// A false result with a nil error means the proof is well-formed
// but does not match; a non-nil error means the proof could not be checked.
func VerifyProof(h mcdigest.Hasher, leafDigest []byte, p Proof, root []byte) (bool, error) {
	if h == nil {
		return false, mcdigest.DigestUnavailableError{
			Cause: errors.New("no hasher provided"),
		}
	}

	left, err := p.Path()
	if err != nil {
		return false, err
	}

	cur := leafDigest
	for k, sib := range p.Siblings {
		if left.Test(uint(k)) {
			cur = h.Sum(nil, sib, cur)
		} else {
			cur = h.Sum(nil, cur, sib)
		}
	}

	return bytes.Equal(cur, root), nil
}

// proofWire is the CBOR layout of a Proof.
// Integer keys keep the encoding compact.
type proofWire struct {
	LeafIndex uint64   `cbor:"1,keyasint"`
	LeafCount uint64   `cbor:"2,keyasint"`
	Siblings  [][]byte `cbor:"3,keyasint"`
}

var (
	proofEncMode cbor.EncMode
	proofDecMode cbor.DecMode
)

func init() {
	var err error

	proofEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("BUG: failed to build CBOR encoding mode: %w", err))
	}

	proofDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(fmt.Errorf("BUG: failed to build CBOR decoding mode: %w", err))
	}
}

// MarshalCBOR encodes p in CBOR core deterministic encoding,
// so equal proofs always encode to identical bytes.
func (p Proof) MarshalCBOR() ([]byte, error) {
	if p.LeafIndex < 0 || p.LeafCount < 0 {
		return nil, InvalidProofError{
			Reason: fmt.Sprintf(
				"cannot encode negative index or count (%d, %d)",
				p.LeafIndex, p.LeafCount,
			),
		}
	}

	return proofEncMode.Marshal(proofWire{
		LeafIndex: uint64(p.LeafIndex),
		LeafCount: uint64(p.LeafCount),
		Siblings:  p.Siblings,
	})
}

// UnmarshalCBOR decodes a proof produced by [Proof.MarshalCBOR].
// The decoded proof is checked for structural validity
// (see [Proof.Path]), but no digests are verified.
func (p *Proof) UnmarshalCBOR(b []byte) error {
	var w proofWire
	if err := proofDecMode.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("failed to decode Merkle proof: %w", err)
	}

	if w.LeafIndex > math.MaxInt || w.LeafCount > math.MaxInt {
		return InvalidProofError{
			Reason: fmt.Sprintf(
				"index or count overflows int (%d, %d)", w.LeafIndex, w.LeafCount,
			),
		}
	}

	decoded := Proof{
		LeafIndex: int(w.LeafIndex),
		LeafCount: int(w.LeafCount),
		Siblings:  w.Siblings,
	}
	if _, err := decoded.Path(); err != nil {
		return err
	}

	*p = decoded
	return nil
}
