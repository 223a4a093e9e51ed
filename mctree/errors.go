package mctree

// EmptyInputError is returned when a tree is requested over zero leaves.
// A Merkle root over nothing has no agreed-upon value,
// so the request is rejected instead of inventing one.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "cannot build Merkle tree from zero leaves"
}

// InvalidProofError is returned when a [Proof] is structurally impossible
// for the tree shape it claims, independent of any digest values.
type InvalidProofError struct {
	Reason string
}

func (e InvalidProofError) Error() string {
	return "invalid Merkle proof: " + e.Reason
}
