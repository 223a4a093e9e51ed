package mercel

import (
	"fmt"
	"log/slog"

	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/gordian-engine/mercel/mcsource"
	"github.com/gordian-engine/mercel/mctag"
	"github.com/gordian-engine/mercel/mctree"
)

// CommitConfig is the configuration passed to [Commit].
type CommitConfig struct {
	// The hasher for leaves, inner nodes, and tags.
	// If nil, HashName is resolved through [HasherByName].
	Hasher mcdigest.Hasher

	// Name of a bundled hasher, used only when Hasher is nil.
	// If both are empty, [DefaultHasherName] is used.
	HashName string

	// Passed through to [mctree.BuilderConfig.Workers].
	Workers int
}

func (c CommitConfig) hasher() (mcdigest.Hasher, error) {
	if c.Hasher != nil {
		return c.Hasher, nil
	}

	name := c.HashName
	if name == "" {
		name = DefaultHasherName
	}
	return HasherByName(name)
}

// Commitment is the result of [Commit]:
// the full Merkle tree over the source's messages,
// along with the hasher that built it.
type Commitment struct {
	Tree *mctree.Tree

	hasher mcdigest.Hasher
}

// Commit reads every message from src, hashes them into leaves,
// and builds the Merkle tree over those leaves.
//
// An empty source results in a [mctree.EmptyInputError],
// and an unavailable hasher results in a [mcdigest.DigestUnavailableError].
func Commit(log *slog.Logger, src mcsource.Source, cfg CommitConfig) (Commitment, error) {
	h, err := cfg.hasher()
	if err != nil {
		return Commitment{}, err
	}

	msgs, err := src.Messages()
	if err != nil {
		return Commitment{}, fmt.Errorf("failed to read messages: %w", err)
	}

	b, err := mctree.NewBuilder(log, mctree.BuilderConfig{
		Hasher:  h,
		Workers: cfg.Workers,
	})
	if err != nil {
		return Commitment{}, err
	}

	tree, err := b.TreeFromMessages(msgs)
	if err != nil {
		return Commitment{}, fmt.Errorf("failed to build Merkle tree: %w", err)
	}

	log.Info(
		"Committed messages",
		"leaves", tree.NumLeaves(),
		"height", tree.Height(),
		"root", mcdigest.UpperHex(tree.Root()),
	)

	return Commitment{
		Tree:   tree,
		hasher: h,
	}, nil
}

// Root returns the Merkle root.
// The caller must not modify the returned slice.
func (c Commitment) Root() []byte {
	return c.Tree.Root()
}

// RootHex returns the Merkle root as uppercase hexadecimal.
func (c Commitment) RootHex() string {
	return mcdigest.UpperHex(c.Tree.Root())
}

// Tag returns the [mctag.Tag] binding msg to the root.
func (c Commitment) Tag(msg []byte) ([]byte, error) {
	return mctag.Tag(c.hasher, msg, c.Tree.Root())
}

// Verify reports whether tag is the [mctag.Tag] of msg under the root.
func (c Commitment) Verify(msg, tag []byte) bool {
	return mctag.Verify(c.hasher, msg, tag, c.Tree.Root())
}

// VerifyMessage reports whether the raw message msg
// is the leaf proven by p under the root.
func (c Commitment) VerifyMessage(msg []byte, p mctree.Proof) (bool, error) {
	return mctree.VerifyProof(c.hasher, c.hasher.Sum(nil, msg), p, c.Tree.Root())
}
