package core

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"apt-repo-function/tests/testutil"
)

const sampleControl = "Package: foo\nVersion: 1.0\nArchitecture: amd64\n"

func TestExtractControlGzip(t *testing.T) {
	payload := testutil.BuildDeb(t, sampleControl)
	control, err := ExtractControl(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, sampleControl, control)
}

func TestExtractControlPlainTar(t *testing.T) {
	payload := testutil.BuildDebWithControlMember(t, "control.tar", testutil.TarWithControl(t, sampleControl))
	control, err := ExtractControl(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, sampleControl, control)
}

func TestExtractControlXZ(t *testing.T) {
	var buf bytes.Buffer
	writer, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = writer.Write(testutil.TarWithControl(t, sampleControl))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	payload := testutil.BuildDebWithControlMember(t, "control.tar.xz", buf.Bytes())
	control, err := ExtractControl(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, sampleControl, control)
}

func TestExtractControlZstd(t *testing.T) {
	var buf bytes.Buffer
	writer, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = writer.Write(testutil.TarWithControl(t, sampleControl))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	payload := testutil.BuildDebWithControlMember(t, "control.tar.zst", buf.Bytes())
	control, err := ExtractControl(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, sampleControl, control)
}

func TestExtractControlGarbage(t *testing.T) {
	_, err := ExtractControl(bytes.NewReader([]byte("this is not a debian package")))
	require.Error(t, err)
	assert.True(t, IsCorruptPackage(err))
}

func TestExtractControlMissingControlArchive(t *testing.T) {
	payload := testutil.BuildDebWithControlMember(t, "data.tar.gz", []byte("x"))
	_, err := ExtractControl(bytes.NewReader(payload))
	require.Error(t, err)
	assert.True(t, IsCorruptPackage(err))
}

func TestExtractControlEmptyControlFile(t *testing.T) {
	// A control file with no content cannot produce a usable stanza; the
	// archive is rejected like any other malformed package.
	for _, control := range []string{"", "   \n\t\n"} {
		payload := testutil.BuildDebWithControlMember(t, "control.tar", testutil.TarWithControl(t, control))
		_, err := ExtractControl(bytes.NewReader(payload))
		require.Error(t, err)
		assert.True(t, IsCorruptPackage(err))
	}
}

func TestIsCorruptPackageOtherError(t *testing.T) {
	assert.False(t, IsCorruptPackage(assert.AnError))
	assert.False(t, IsCorruptPackage(nil))
}
