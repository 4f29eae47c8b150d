package core

import (
	"bytes"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ulikunitz/xz"
)

// CompressXZ compresses data with default xz settings. An empty input still
// yields a well-formed xz stream.
func CompressXZ(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create xz writer").
			WithCause(err)
	}
	if _, err := writer.Write(data); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to compress index").
			WithCause(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to finish xz stream").
			WithCause(err)
	}
	return buf.Bytes(), nil
}

// DecompressXZ inflates an xz stream produced by CompressXZ.
func DecompressXZ(data []byte) ([]byte, error) {
	reader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid xz stream").
			WithCause(err)
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decompress index").
			WithCause(err)
	}
	return out, nil
}
