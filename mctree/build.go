package mctree

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/mercel/mcdigest"
	"golang.org/x/sync/errgroup"
)

// Build reduces the leaf digests level by level to a single root digest.
//
// A single leaf digest is its own root, and h is never called.
// Zero leaves result in an [EmptyInputError],
// and a nil h results in a [mcdigest.DigestUnavailableError].
//
// Build does not modify leafDigests,
// and the returned root never aliases any of its elements.
func Build(h mcdigest.Hasher, leafDigests [][]byte) ([]byte, error) {
	r := reducer{
		log: discardLogger,
		h:   h,
	}
	return r.root(leafDigests, nil)
}

// LeafDigests hashes each raw message with h, preserving order,
// to produce level 0 of a tree.
func LeafDigests(h mcdigest.Hasher, msgs [][]byte) ([][]byte, error) {
	if h == nil {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("no hasher provided"),
		}
	}
	if len(msgs) == 0 {
		return nil, EmptyInputError{}
	}

	out := make([][]byte, len(msgs))

	// Hash the first message on its own to learn the digest width,
	// so that every leaf can share one backing allocation.
	first := h.Sum(nil, msgs[0])
	sz := len(first)
	if sz == 0 {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("hasher produced an empty digest"),
		}
	}

	mem := make([]byte, len(msgs)*sz)
	copy(mem, first)
	out[0] = mem[:sz:sz]

	for i := 1; i < len(msgs); i++ {
		start := i * sz
		d := h.Sum(mem[start:start:start+sz], msgs[i])
		if len(d) != sz {
			return nil, inconsistentWidthError(len(d), sz, "leaf", i)
		}
		out[i] = d
	}

	return out, nil
}

// BuildFromMessages is shorthand for [LeafDigests] followed by [Build].
func BuildFromMessages(h mcdigest.Hasher, msgs [][]byte) ([]byte, error) {
	leaves, err := LeafDigests(h, msgs)
	if err != nil {
		return nil, err
	}
	return Build(h, leaves)
}

var discardLogger = slog.New(slog.DiscardHandler)

// reducer holds everything needed to run reduction rounds.
// The zero value for workers and threshold means sequential reduction.
type reducer struct {
	log *slog.Logger
	h   mcdigest.Hasher

	workers   int
	threshold int
}

// root reduces leafDigests to the root.
// If onLevel is not nil, it is called with every level in order,
// starting with the leaf level and ending with the single-element root level,
// along with whether that level carried its last node forward.
func (r reducer) root(
	leafDigests [][]byte,
	onLevel func(level [][]byte, carried bool),
) ([]byte, error) {
	if r.h == nil {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("no hasher provided"),
		}
	}
	if len(leafDigests) == 0 {
		return nil, EmptyInputError{}
	}

	level := leafDigests
	for depth := 0; len(level) > 1; depth++ {
		carried := len(level)&1 == 1
		next, err := r.reduceLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to reduce level %d: %w", depth, err)
		}

		if onLevel != nil {
			onLevel(level, carried)
		}

		r.log.Debug(
			"Reduced Merkle level",
			"level", depth,
			"width", len(level),
			"next_width", len(next),
			"carried", carried,
		)

		level = next
	}

	if onLevel != nil {
		onLevel(level, false)
	}

	if len(leafDigests) == 1 {
		// The only leaf is the root, but don't hand back the caller's own slice.
		return bytes.Clone(level[0]), nil
	}
	return level[0], nil
}

// reduceLevel produces the next level from a level of width at least two.
// The returned level is freshly allocated,
// except that a carried node references the same digest as in level.
func (r reducer) reduceLevel(level [][]byte) ([][]byte, error) {
	n := len(level)
	if n < 2 {
		panic(fmt.Errorf(
			"BUG: reduceLevel requires at least 2 nodes (got %d)", n,
		))
	}

	nPairs := n / 2
	next := make([][]byte, (n+1)/2)

	// Hash the first pair on its own to learn the digest width,
	// so the rest of the level can share one allocation.
	first := r.h.Sum(nil, level[0], level[1])
	sz := len(first)
	if sz == 0 {
		return nil, mcdigest.DigestUnavailableError{
			Cause: errors.New("hasher produced an empty digest"),
		}
	}

	mem := make([]byte, nPairs*sz)
	copy(mem, first)
	next[0] = mem[:sz:sz]

	// Every pair writes only to its own index of next and its own region of mem,
	// so ranges of pairs can be hashed independently.
	hashRange := func(start, end int) error {
		for i := start; i < end; i++ {
			off := i * sz
			d := r.h.Sum(mem[off:off:off+sz], level[2*i], level[2*i+1])
			if len(d) != sz {
				return inconsistentWidthError(len(d), sz, "pair", i)
			}
			next[i] = d
		}
		return nil
	}

	if r.workers <= 1 || nPairs-1 < r.threshold {
		if err := hashRange(1, nPairs); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.workers)

		span := (nPairs - 1 + r.workers - 1) / r.workers
		for start := 1; start < nPairs; start += span {
			end := min(start+span, nPairs)
			g.Go(func() error {
				return hashRange(start, end)
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if n&1 == 1 {
		// Odd width: the unpaired last node moves up unchanged.
		next[nPairs] = level[n-1]
	}

	return next, nil
}

func inconsistentWidthError(got, want int, kind string, idx int) error {
	return mcdigest.DigestUnavailableError{
		Cause: fmt.Errorf(
			"hasher produced %d-byte digest for %s %d; expected %d bytes",
			got, kind, idx, want,
		),
	}
}
