package mctag_test

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"hash/fnv"
	"testing"

	"github.com/gordian-engine/mercel/internal/mctest"
	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/gordian-engine/mercel/mcdigest/mcblake3"
	"github.com/gordian-engine/mercel/mcdigest/mcsha256"
	"github.com/gordian-engine/mercel/mctag"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	t.Parallel()

	msg := []byte{0, 0, 0, 0}
	root := mctest.RandomDataForTest(t, 32)

	tag, err := mctag.Tag(mcsha256.Hasher{}, msg, root)
	require.NoError(t, err)

	want := sha256.Sum256(append(bytes.Clone(msg), root...))
	require.Equal(t, want[:], tag)
	require.Len(t, tag, mctag.TagSize)
}

func TestTag_truncatesLongDigests(t *testing.T) {
	t.Parallel()

	h := mcdigest.FromHashFactory(sha512.New)
	msg := []byte("message")
	root := mctest.RandomDataForTest(t, 32)

	tag, err := mctag.Tag(h, msg, root)
	require.NoError(t, err)

	full := sha512.Sum512(append(bytes.Clone(msg), root...))
	require.Equal(t, full[:mctag.TagSize], tag)
	require.Equal(t, mctag.TagSize, cap(tag))
}

func TestTag_unusableHasher(t *testing.T) {
	t.Parallel()

	_, err := mctag.Tag(nil, []byte("m"), []byte("r"))
	var unavail mcdigest.DigestUnavailableError
	require.ErrorAs(t, err, &unavail)

	short := mcdigest.FromHashFactory(func() hash.Hash { return fnv.New32() })
	_, err = mctag.Tag(short, []byte("m"), []byte("r"))
	require.ErrorAs(t, err, &unavail)

	require.False(t, mctag.Verify(short, []byte("m"), make([]byte, 4), []byte("r")))
	require.False(t, mctag.Verify(nil, []byte("m"), nil, []byte("r")))
}

func TestVerify_roundTrip(t *testing.T) {
	t.Parallel()

	for _, h := range []mcdigest.Hasher{mcsha256.Hasher{}, mcblake3.Hasher{}} {
		msg := mctest.RandomDataForTest(t, 77)
		root := mctest.RandomDataForTest(t, 32)

		tag, err := mctag.Tag(h, msg, root)
		require.NoError(t, err)
		require.True(t, mctag.Verify(h, msg, tag, root))
	}
}

func TestVerify_singleBitMutations(t *testing.T) {
	t.Parallel()

	h := mcsha256.Hasher{}
	msg := []byte("the message")
	root := mctest.RandomDataForTest(t, 32)

	tag, err := mctag.Tag(h, msg, root)
	require.NoError(t, err)

	flip := func(b []byte, bit int) []byte {
		out := bytes.Clone(b)
		out[bit/8] ^= 1 << (bit % 8)
		return out
	}

	for bit := range len(msg) * 8 {
		require.False(t, mctag.Verify(h, flip(msg, bit), tag, root), "msg bit %d", bit)
	}
	for bit := range len(root) * 8 {
		require.False(t, mctag.Verify(h, msg, tag, flip(root, bit)), "root bit %d", bit)
	}
	for bit := range len(tag) * 8 {
		require.False(t, mctag.Verify(h, msg, flip(tag, bit), root), "tag bit %d", bit)
	}

	// Truncated or extended tags never verify.
	require.False(t, mctag.Verify(h, msg, tag[:31], root))
	require.False(t, mctag.Verify(h, msg, append(bytes.Clone(tag), 0), root))
}

func TestVerifyAll(t *testing.T) {
	t.Parallel()

	h := mcsha256.Hasher{}
	root := mctest.RandomDataForTest(t, 32)

	msgs := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	tags := make([][]byte, len(msgs))
	for i, m := range msgs {
		tag, err := mctag.Tag(h, m, root)
		require.NoError(t, err)
		tags[i] = tag
	}

	// Swap two tags so neither matches.
	tags[1], tags[2] = tags[2], tags[1]

	ok, err := mctag.VerifyAll(h, msgs, tags, root)
	require.NoError(t, err)
	require.True(t, ok.Test(0))
	require.False(t, ok.Test(1))
	require.False(t, ok.Test(2))
	require.True(t, ok.Test(3))
	require.Equal(t, uint(2), ok.Count())

	_, err = mctag.VerifyAll(h, msgs, tags[:3], root)
	require.Error(t, err)

	_, err = mctag.VerifyAll(nil, msgs, tags, root)
	var unavail mcdigest.DigestUnavailableError
	require.ErrorAs(t, err, &unavail)
}
