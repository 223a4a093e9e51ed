package mcdigesttest

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gordian-engine/mercel/mcdigest"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h mcdigest.Hasher, hashSize int)

// TestHasherCompliance runs the behavioral checks
// that every [mcdigest.Hasher] implementation must satisfy
// in order to be used for tree construction.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		a := h.Sum(nil, []byte("deterministic_data"))
		b := h.Sum(nil, []byte("deterministic_data"))
		require.Equal(t, a, b)
	})

	t.Run("output has fixed width", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		for _, in := range [][]byte{
			nil,
			{0},
			[]byte("short"),
			bytes.Repeat([]byte("long input "), 1000),
		} {
			require.Len(t, h.Sum(nil, in), sz)
		}

		// Also with no parts at all.
		require.Len(t, h.Sum(nil), sz)
	})

	t.Run("parts are plain concatenation", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		joined := h.Sum(nil, []byte("leftright"))
		split := h.Sum(nil, []byte("left"), []byte("right"))
		require.Equal(t, joined, split)

		uneven := h.Sum(nil, []byte("l"), nil, []byte("eftrigh"), []byte("t"))
		require.Equal(t, joined, uneven)
	})

	t.Run("appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		want := h.Sum(nil, []byte("payload"))

		prefix := []byte("prefix")
		dst := make([]byte, len(prefix), len(prefix)+sz)
		copy(dst, prefix)

		got := h.Sum(dst, []byte("payload"))
		require.Equal(t, prefix, got[:len(prefix)])
		require.Equal(t, want, got[len(prefix):])

		// The prefix was not modified in place.
		require.Equal(t, []byte("prefix"), dst[:len(prefix)])
	})

	t.Run("respects order of parts", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		ab := h.Sum(nil, []byte("aaaa"), []byte("bbbb"))
		ba := h.Sum(nil, []byte("bbbb"), []byte("aaaa"))
		require.NotEqual(t, ab, ba)
	})

	t.Run("distinguishes inputs", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		require.NotEqual(t, h.Sum(nil, []byte{0}), h.Sum(nil, []byte{1}))
		require.NotEqual(t, h.Sum(nil, nil), h.Sum(nil, []byte{0}))
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		want := h.Sum(nil, []byte("concurrent"), []byte("input"))

		const n = 16
		results := make([][]byte, n)

		var wg sync.WaitGroup
		wg.Add(n)
		for i := range n {
			go func() {
				defer wg.Done()
				for range 32 {
					results[i] = h.Sum(results[i][:0], []byte("concurrent"), []byte("input"))
				}
			}()
		}
		wg.Wait()

		for _, got := range results {
			require.Equal(t, want, got)
		}
	})
}
