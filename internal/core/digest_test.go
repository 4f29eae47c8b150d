package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDigestsKnownVector(t *testing.T) {
	digests, err := ComputeDigests(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", digests.MD5)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", digests.SHA1)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digests.SHA256)
	assert.Equal(t, int64(3), digests.Size)
}

func TestComputeDigestsEmpty(t *testing.T) {
	digests, err := ComputeDigests(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", digests.MD5)
	assert.Equal(t, int64(0), digests.Size)
}
