package mctree

import (
	"errors"
	"log/slog"
	"runtime"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/mercel/mcdigest"
)

// Builder builds Merkle trees with a fixed hasher and reduction settings.
// A Builder holds no per-build state, so it is safe for concurrent use
// whenever its hasher is.
type Builder struct {
	r reducer
}

// BuilderConfig is the configuration passed to [NewBuilder].
type BuilderConfig struct {
	// How to hash inner nodes.
	// Required.
	Hasher mcdigest.Hasher

	// Maximum number of goroutines hashing pairs within a single level.
	// Zero or one means every level is reduced on the calling goroutine.
	// A negative value means runtime.GOMAXPROCS(0).
	//
	// Concurrent reduction splits a level into contiguous ranges of pairs,
	// so the output is identical to sequential reduction.
	Workers int

	// Levels with fewer pairs than this are always reduced sequentially,
	// since goroutine overhead outweighs hashing a handful of pairs.
	// Zero means DefaultParallelThreshold.
	ParallelThreshold int
}

// DefaultParallelThreshold is the pair count
// below which a level is reduced sequentially,
// when [BuilderConfig.ParallelThreshold] is zero.
const DefaultParallelThreshold = 256

// NewBuilder returns a Builder for the given config.
// It returns a [mcdigest.DigestUnavailableError] if cfg.Hasher is nil.
func NewBuilder(log *slog.Logger, cfg BuilderConfig) (*Builder, error) {
	if cfg.Hasher == nil {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("BuilderConfig.Hasher must be set"),
		}
	}

	workers := cfg.Workers
	if workers < 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	threshold := cfg.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}

	if workers > 1 {
		log.Debug(
			"Using concurrent level reduction",
			"workers", workers,
			"threshold", threshold,
		)
	}

	return &Builder{
		r: reducer{
			log: log,
			h:   cfg.Hasher,

			workers:   workers,
			threshold: threshold,
		},
	}, nil
}

// Root reduces leafDigests to the Merkle root,
// discarding each intermediate level once the next one is built.
// It has the same semantics as [Build].
func (b *Builder) Root(leafDigests [][]byte) ([]byte, error) {
	return b.r.root(leafDigests, nil)
}

// Tree reduces leafDigests to the Merkle root,
// retaining every level in the returned Tree.
//
// The Tree holds references to the given leaf digests,
// so the caller must not modify them after calling Tree.
func (b *Builder) Tree(leafDigests [][]byte) (*Tree, error) {
	t := &Tree{
		carried: bitset.MustNew(0),
	}

	if _, err := b.r.root(leafDigests, func(level [][]byte, carried bool) {
		if carried {
			t.carried.Set(uint(len(t.levels)))
		}
		t.levels = append(t.levels, level)
	}); err != nil {
		return nil, err
	}

	// Level 0 is the caller's slice; keep our own header
	// so that appending to or reslicing the argument has no effect here.
	t.levels[0] = slices.Clone(t.levels[0])

	return t, nil
}

// TreeFromMessages hashes each raw message into a leaf digest
// and then behaves as [*Builder.Tree].
// Unlike Tree, the returned value shares no memory with msgs.
func (b *Builder) TreeFromMessages(msgs [][]byte) (*Tree, error) {
	leaves, err := LeafDigests(b.r.h, msgs)
	if err != nil {
		return nil, err
	}
	return b.Tree(leaves)
}
