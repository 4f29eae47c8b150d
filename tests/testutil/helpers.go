// Package testutil provides shared test helpers used across unit and
// integration test packages.
package testutil

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/stretchr/testify/require"
)

// BuildDeb assembles a minimal but structurally valid Debian package: an ar
// archive holding debian-binary, a gzipped control tar with the given control
// stanza, and an empty data member.
func BuildDeb(t *testing.T, control string) []byte {
	t.Helper()
	controlTar := gzipBytes(t, tarWithControl(t, control))
	dataTar := gzipBytes(t, emptyTar(t))

	var buf bytes.Buffer
	writer := ar.NewWriter(&buf)
	require.NoError(t, writer.WriteGlobalHeader())
	writeArMember(t, writer, "debian-binary", []byte("2.0\n"))
	writeArMember(t, writer, "control.tar.gz", controlTar)
	writeArMember(t, writer, "data.tar.gz", dataTar)
	return buf.Bytes()
}

// BuildDebWithControlMember is BuildDeb with an explicit control member name
// and payload, for exercising the other compression variants and corrupt
// archives.
func BuildDebWithControlMember(t *testing.T, memberName string, memberPayload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := ar.NewWriter(&buf)
	require.NoError(t, writer.WriteGlobalHeader())
	writeArMember(t, writer, "debian-binary", []byte("2.0\n"))
	writeArMember(t, writer, memberName, memberPayload)
	return buf.Bytes()
}

// TarWithControl builds a tar stream holding ./control with the given text.
func TarWithControl(t *testing.T, control string) []byte {
	t.Helper()
	return tarWithControl(t, control)
}

func tarWithControl(t *testing.T, control string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := tar.NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(&tar.Header{
		Name:    "./control",
		Mode:    0644,
		Size:    int64(len(control)),
		ModTime: time.Unix(0, 0),
	}))
	_, err := writer.Write([]byte(control))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func emptyTar(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := tar.NewWriter(&buf)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func gzipBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, err := writer.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func writeArMember(t *testing.T, writer *ar.Writer, name string, payload []byte) {
	t.Helper()
	require.NoError(t, writer.WriteHeader(&ar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(payload)),
		ModTime: time.Unix(0, 0),
	}))
	_, err := writer.Write(payload)
	require.NoError(t, err)
}
