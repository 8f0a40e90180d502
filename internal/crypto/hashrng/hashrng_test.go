package hashrng

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	a := make([]byte, 128)
	b := make([]byte, 128)
	_, err := io.ReadFull(New([]byte("seed")), a)
	require.NoError(t, err)
	_, err = io.ReadFull(New([]byte("seed")), b)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSeedSensitive(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	_, err := io.ReadFull(New([]byte("seed-1")), a)
	require.NoError(t, err)
	_, err = io.ReadFull(New([]byte("seed-2")), b)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestUnboundedStream(t *testing.T) {
	buf := make([]byte, 1<<16)
	_, err := io.ReadFull(New([]byte("long")), buf)
	require.NoError(t, err)

	// Reading in chunks yields the same stream as one read.
	r := New([]byte("long"))
	chunked := make([]byte, 1<<16)
	for off := 0; off < len(chunked); off += 4096 {
		_, err := io.ReadFull(r, chunked[off:off+4096])
		require.NoError(t, err)
	}
	assert.Equal(t, buf, chunked)
}
