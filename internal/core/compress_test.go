package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte(""),
		[]byte("Package: foo\nVersion: 1.0\n\n"),
		bytes.Repeat([]byte{0x42}, 1<<16),
	}
	for _, payload := range payloads {
		compressed, err := CompressXZ(payload)
		require.NoError(t, err)
		require.NotEmpty(t, compressed)

		decompressed, err := DecompressXZ(compressed)
		require.NoError(t, err)
		assert.Equal(t, len(payload), len(decompressed))
		assert.True(t, bytes.Equal(payload, decompressed))
	}
}

func TestDecompressInvalidStream(t *testing.T) {
	_, err := DecompressXZ([]byte("not an xz stream"))
	require.Error(t, err)
}
