package core

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"path"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// A Debian package is an ar archive whose first member is "debian-binary"
// (format version "2.0\n") followed by a control archive and a data archive.
// The control archive is a tar holding the package's control file, compressed
// with gzip, xz or zstd depending on the dpkg version that built it.

// ExtractControl walks the package archive in r and returns the text of its
// control file. Any structural problem yields a CorruptPackageError.
func ExtractControl(r io.Reader) (string, error) {
	reader := ar.NewReader(r)

	header, err := reader.Next()
	if err != nil {
		return "", CorruptPackageError("not an ar archive", err)
	}
	if memberName(header.Name) != "debian-binary" {
		return "", CorruptPackageError("first member is not debian-binary", nil)
	}
	formatVersion, err := io.ReadAll(io.LimitReader(reader, 16))
	if err != nil {
		return "", CorruptPackageError("unreadable debian-binary member", err)
	}
	if strings.TrimSpace(string(formatVersion)) != "2.0" {
		return "", CorruptPackageError("unsupported package format version", nil)
	}

	for {
		header, err = reader.Next()
		if err == io.EOF {
			return "", CorruptPackageError("control archive member not found", nil)
		}
		if err != nil {
			return "", CorruptPackageError("truncated ar archive", err)
		}
		name := memberName(header.Name)
		if !strings.HasPrefix(name, "control.tar") {
			continue
		}
		control, err := readControlArchive(reader, name)
		if err != nil {
			return "", err
		}
		return control, nil
	}
}

// readControlArchive decompresses one control.tar* member and returns the
// contents of the control file inside it.
func readControlArchive(r io.Reader, name string) (string, error) {
	var decompressed io.Reader
	switch {
	case name == "control.tar":
		decompressed = r
	case strings.HasSuffix(name, ".gz"):
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return "", CorruptPackageError("invalid gzip control archive", err)
		}
		defer gzReader.Close()
		decompressed = gzReader
	case strings.HasSuffix(name, ".xz"):
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return "", CorruptPackageError("invalid xz control archive", err)
		}
		decompressed = xzReader
	case strings.HasSuffix(name, ".zst"):
		zstdReader, err := zstd.NewReader(r)
		if err != nil {
			return "", CorruptPackageError("invalid zstd control archive", err)
		}
		defer zstdReader.Close()
		decompressed = zstdReader
	default:
		return "", CorruptPackageError("unsupported control archive compression "+name, nil)
	}

	tarReader := tar.NewReader(decompressed)
	for {
		entry, err := tarReader.Next()
		if err == io.EOF {
			return "", CorruptPackageError("control file not found in control archive", nil)
		}
		if err != nil {
			return "", CorruptPackageError("invalid control archive", err)
		}
		if path.Clean(entry.Name) != "control" {
			continue
		}
		contents, err := io.ReadAll(tarReader)
		if err != nil {
			return "", CorruptPackageError("unreadable control file", err)
		}
		if strings.TrimSpace(string(contents)) == "" {
			return "", CorruptPackageError("empty control file", nil)
		}
		return string(contents), nil
	}
}

// memberName normalizes an ar member name: some archivers pad with spaces or
// terminate with a slash.
func memberName(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), "/")
}
