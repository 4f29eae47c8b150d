package adapters

import (
	"bytes"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/core"
	"apt-repo-function/internal/ports"
	"apt-repo-function/internal/types"
)

// DebExtractorAdapter stages a package artifact to a temporary file and
// extracts its control stanza and digests. The staging file is scoped to one
// Extract call and removed on every exit path.
type DebExtractorAdapter struct{}

func NewDebExtractorAdapter() DebExtractorAdapter {
	return DebExtractorAdapter{}
}

func (a DebExtractorAdapter) Extract(name string, payload []byte) (types.ControlInfo, error) {
	staging, err := os.CreateTemp("", "apt-repo-function-*.deb")
	if err != nil {
		return types.ControlInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create staging file").
			WithCause(err)
	}
	defer func() {
		staging.Close()
		if err := os.Remove(staging.Name()); err != nil {
			log.Warn().Err(err).Str("path", staging.Name()).Msg("failed to remove staging file")
		}
	}()

	if _, err := staging.Write(payload); err != nil {
		return types.ControlInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stage package " + name).
			WithCause(err)
	}
	if _, err := staging.Seek(0, io.SeekStart); err != nil {
		return types.ControlInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to rewind staging file").
			WithCause(err)
	}

	control, err := core.ExtractControl(staging)
	if err != nil {
		return types.ControlInfo{}, err
	}

	// Digests cover the entire artifact, not just the control member.
	digests, err := core.ComputeDigests(bytes.NewReader(payload))
	if err != nil {
		return types.ControlInfo{}, err
	}

	return types.ControlInfo{
		Control: control,
		MD5:     digests.MD5,
		SHA1:    digests.SHA1,
		SHA256:  digests.SHA256,
		Size:    digests.Size,
	}, nil
}

var _ ports.ExtractorPort = DebExtractorAdapter{}
