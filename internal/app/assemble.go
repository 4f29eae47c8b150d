package app

import (
	"bytes"
	"context"

	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/core"
	"apt-repo-function/internal/shared"
	"apt-repo-function/internal/types"
)

// AssembleIndex rebuilds both index artifacts from scratch: every metadata
// record in the container, concatenated in enumeration order, uploaded as
// Packages and, xz-compressed, as Packages.xz. There is no incremental merge
// and no partial-index fallback; a failed download aborts the assembly.
func (s Service) AssembleIndex(ctx context.Context) (AssembleResult, error) {
	objects, err := s.Store.List(ctx)
	if err != nil {
		return AssembleResult{}, err
	}

	var buffer bytes.Buffer
	records := 0
	for _, object := range objects {
		if !shared.IsMetadata(object.Name) {
			continue
		}
		payload, err := s.Store.Download(ctx, object.Name)
		if err != nil {
			return AssembleResult{}, err
		}
		buffer.Write(payload)
		records++
		log.Debug().Str("record", object.Name).Int("bytes", len(payload)).Msg("collected metadata record")
	}

	index := buffer.Bytes()
	if err := s.Store.Upload(ctx, types.IndexName, index, nil); err != nil {
		return AssembleResult{}, err
	}
	log.Info().Int("records", records).Int("bytes", len(index)).Msg("uploaded Packages")

	compressed, err := core.CompressXZ(index)
	if err != nil {
		return AssembleResult{}, err
	}
	if err := s.Store.Upload(ctx, types.CompressedIndexName, compressed, nil); err != nil {
		return AssembleResult{}, err
	}
	log.Info().Int("bytes", len(compressed)).Msg("uploaded Packages.xz")

	return AssembleResult{
		Records:        records,
		IndexSize:      len(index),
		CompressedSize: len(compressed),
	}, nil
}
