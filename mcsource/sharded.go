package mcsource

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// ShardConfig describes a Reed-Solomon erasure coding layout.
type ShardConfig struct {
	// Number of shards the original data is split into.
	DataShards int

	// Number of parity shards computed from the data shards.
	// Up to this many shards may be lost
	// and the data can still be recovered.
	ParityShards int
}

// Sharded is a [Source] whose messages are the erasure-coded shards of Data:
// first the data shards in order, then the parity shards.
// A Merkle root over these messages commits to every shard,
// so any individual shard can be checked against the root
// before it is used for recovery.
type Sharded struct {
	Data []byte

	ShardConfig
}

func (s Sharded) Messages() ([][]byte, error) {
	if len(s.Data) == 0 {
		return nil, errors.New("cannot shard empty data")
	}

	enc, err := s.encoder()
	if err != nil {
		return nil, err
	}

	// Split uses any spare capacity of its argument,
	// so work on a copy to leave the caller's memory alone.
	shards, err := enc.Split(bytes.Clone(s.Data))
	if err != nil {
		return nil, fmt.Errorf(
			"failed to split data for sharding: %w", err,
		)
	}

	if err := enc.Encode(shards); err != nil {
		return nil, fmt.Errorf(
			"failed to erasure-code data: %w", err,
		)
	}

	return shards, nil
}

// Recover reconstructs the original dataLen bytes from shards.
// Missing shards must be nil or zero-length entries;
// shards must otherwise have the layout produced by [Sharded.Messages].
// The shards slice is modified in place as missing data shards are rebuilt.
func (c ShardConfig) Recover(shards [][]byte, dataLen int) ([]byte, error) {
	enc, err := c.encoder()
	if err != nil {
		return nil, err
	}

	if err := enc.ReconstructData(shards); err != nil {
		return nil, fmt.Errorf(
			"failed to reconstruct data shards: %w", err,
		)
	}

	var buf bytes.Buffer
	buf.Grow(dataLen)
	if err := enc.Join(&buf, shards, dataLen); err != nil {
		return nil, fmt.Errorf(
			"failed to join data shards: %w", err,
		)
	}

	return buf.Bytes(), nil
}

func (c ShardConfig) encoder() (reedsolomon.Encoder, error) {
	enc, err := reedsolomon.New(c.DataShards, c.ParityShards)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to build Reed-Solomon encoder (data=%d, parity=%d): %w",
			c.DataShards, c.ParityShards, err,
		)
	}
	return enc, nil
}
