package core

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Digests holds the cryptographic digests and size of one package artifact,
// computed over its entire raw contents.
type Digests struct {
	MD5    string
	SHA1   string
	SHA256 string
	Size   int64
}

// ComputeDigests reads r to EOF and returns lower-case hex MD5, SHA1 and
// SHA256 digests plus the byte count, all computed in a single pass.
func ComputeDigests(r io.Reader) (Digests, error) {
	md5Hasher := md5.New()
	sha1Hasher := sha1.New()
	sha256Hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(md5Hasher, sha1Hasher, sha256Hasher), r)
	if err != nil {
		return Digests{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to digest package contents").
			WithCause(err)
	}
	return Digests{
		MD5:    hex.EncodeToString(md5Hasher.Sum(nil)),
		SHA1:   hex.EncodeToString(sha1Hasher.Sum(nil)),
		SHA256: hex.EncodeToString(sha256Hasher.Sum(nil)),
		Size:   size,
	}, nil
}
