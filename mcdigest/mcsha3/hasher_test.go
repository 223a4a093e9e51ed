package mcsha3_test

import (
	"encoding/hex"
	"testing"

	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/gordian-engine/mercel/mcdigest/mcdigesttest"
	"github.com/gordian-engine/mercel/mcdigest/mcsha3"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	t.Run("sha3-256", func(t *testing.T) {
		t.Parallel()

		mcdigesttest.TestHasherCompliance(t, func() (mcdigest.Hasher, int) {
			return mcsha3.SHA3{}, mcsha3.HashSize
		})
	})

	t.Run("keccak256", func(t *testing.T) {
		t.Parallel()

		mcdigesttest.TestHasherCompliance(t, func() (mcdigest.Hasher, int) {
			return mcsha3.Keccak{}, mcsha3.HashSize
		})
	})
}

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	require.Equal(
		t,
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		hex.EncodeToString(mcsha3.SHA3{}.Sum(nil, []byte("abc"))),
	)

	// Keccak-256 of the empty input differs from SHA3-256 of the empty input
	// only because of the padding rule.
	require.Equal(
		t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(mcsha3.Keccak{}.Sum(nil)),
	)
}
