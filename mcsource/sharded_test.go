package mcsource_test

import (
	"bytes"
	"testing"

	"github.com/gordian-engine/mercel/internal/mctest"
	"github.com/gordian-engine/mercel/mcsource"
	"github.com/stretchr/testify/require"
)

func TestSharded_Messages(t *testing.T) {
	t.Parallel()

	data := mctest.RandomDataForTest(t, 1000)

	s := mcsource.Sharded{
		Data: data,
		ShardConfig: mcsource.ShardConfig{
			DataShards:   6,
			ParityShards: 2,
		},
	}

	shards, err := s.Messages()
	require.NoError(t, err)
	require.Len(t, shards, 8)

	sz := len(shards[0])
	for i, shard := range shards {
		require.Len(t, shard, sz, "shard %d", i)
	}

	// The data shards, concatenated, start with the original data.
	var joined []byte
	for _, shard := range shards[:6] {
		joined = append(joined, shard...)
	}
	require.Equal(t, data, joined[:len(data)])

	// Sharding is deterministic.
	again, err := s.Messages()
	require.NoError(t, err)
	require.Equal(t, shards, again)
}

func TestSharded_Messages_leavesCallerMemory(t *testing.T) {
	t.Parallel()

	backing := make([]byte, 100, 400)
	copy(backing, mctest.RandomDataForTest(t, 100))
	spare := backing[:400]
	for i := 100; i < 400; i++ {
		spare[i] = 0xaa
	}

	_, err := mcsource.Sharded{
		Data:        backing,
		ShardConfig: mcsource.ShardConfig{DataShards: 4, ParityShards: 4},
	}.Messages()
	require.NoError(t, err)

	require.Equal(t, bytes.Repeat([]byte{0xaa}, 300), spare[100:])
}

func TestSharded_Messages_errors(t *testing.T) {
	t.Parallel()

	_, err := mcsource.Sharded{
		ShardConfig: mcsource.ShardConfig{DataShards: 2, ParityShards: 1},
	}.Messages()
	require.Error(t, err)

	_, err = mcsource.Sharded{
		Data:        []byte("data"),
		ShardConfig: mcsource.ShardConfig{DataShards: 0, ParityShards: 1},
	}.Messages()
	require.Error(t, err)
}

func TestShardConfig_Recover(t *testing.T) {
	t.Parallel()

	data := mctest.RandomDataForTest(t, 777)
	cfg := mcsource.ShardConfig{DataShards: 5, ParityShards: 3}

	shards, err := mcsource.Sharded{Data: data, ShardConfig: cfg}.Messages()
	require.NoError(t, err)

	t.Run("no loss", func(t *testing.T) {
		t.Parallel()

		in := make([][]byte, len(shards))
		for i, s := range shards {
			in[i] = bytes.Clone(s)
		}

		got, err := cfg.Recover(in, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	})

	t.Run("lost up to parity count", func(t *testing.T) {
		t.Parallel()

		in := make([][]byte, len(shards))
		for i, s := range shards {
			in[i] = bytes.Clone(s)
		}
		in[0] = nil
		in[2] = nil
		in[6] = nil

		got, err := cfg.Recover(in, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	})

	t.Run("lost too many", func(t *testing.T) {
		t.Parallel()

		in := make([][]byte, len(shards))
		for i, s := range shards {
			in[i] = bytes.Clone(s)
		}
		for _, i := range []int{0, 1, 2, 3} {
			in[i] = nil
		}

		_, err := cfg.Recover(in, len(data))
		require.Error(t, err)
	})
}
