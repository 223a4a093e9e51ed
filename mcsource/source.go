// Package mcsource supplies ordered raw messages
// to be hashed into the leaves of a Merkle tree.
package mcsource

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Source supplies an ordered sequence of raw messages.
// The order of the returned messages is the order of the tree's leaves.
type Source interface {
	Messages() ([][]byte, error)
}

// Sequential is a [Source] of Count messages,
// where message i is the 4-byte little-endian encoding of uint32(i).
type Sequential struct {
	Count int
}

func (s Sequential) Messages() ([][]byte, error) {
	if s.Count < 0 || uint64(s.Count) > math.MaxUint32+1 {
		return nil, fmt.Errorf(
			"sequential message count must be in range [0, 2^32] (got %d)", s.Count,
		)
	}

	const msgSize = 4

	// All messages share a single backing allocation,
	// capped so that appending to one cannot clobber the next.
	mem := make([]byte, s.Count*msgSize)
	out := make([][]byte, s.Count)
	for i := range out {
		m := mem[i*msgSize : (i+1)*msgSize : (i+1)*msgSize]
		binary.LittleEndian.PutUint32(m, uint32(i))
		out[i] = m
	}

	return out, nil
}

// Static is a [Source] of fixed, caller-provided messages.
// The returned outer slice is a copy,
// but the messages themselves are shared with the Static value.
type Static [][]byte

func (s Static) Messages() ([][]byte, error) {
	out := make([][]byte, len(s))
	copy(out, s)
	return out, nil
}
