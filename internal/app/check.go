package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/core"
	"apt-repo-function/internal/shared"
	"apt-repo-function/internal/types"
)

// Classify decides what state a metadata record is in relative to its owning
// package artifact. The tag comparison is exact string equality on the
// store-reported last-modified value.
func Classify(artifact types.ObjectInfo, record types.ObjectInfo, exists bool) types.RecordState {
	if !exists {
		return types.RecordMissing
	}
	tagged, ok := record.Tags[types.TagLastModified]
	if !ok {
		return types.RecordStale
	}
	if tagged != artifact.LastModified {
		return types.RecordStale
	}
	return types.RecordValid
}

// CheckPackage ensures a valid metadata record exists for the artifact,
// rebuilding it when missing or stale. It reports whether a rebuild happened.
func (s Service) CheckPackage(ctx context.Context, artifact types.ObjectInfo) (bool, error) {
	log.Info().Str("package", artifact.Name).Msg("checking package")

	metadataName := shared.MetadataName(artifact.Name)
	exists, err := s.Store.Exists(ctx, metadataName)
	if err != nil {
		return false, err
	}
	var record types.ObjectInfo
	if exists {
		record, err = s.Store.Properties(ctx, metadataName)
		if err != nil {
			return false, err
		}
	}

	switch state := Classify(artifact, record, exists); state {
	case types.RecordValid:
		return false, nil
	case types.RecordMissing:
		log.Warn().Str("package", artifact.Name).Msg("metadata record missing")
	case types.RecordStale:
		log.Warn().Str("package", artifact.Name).Msg("metadata record out of date")
	}

	if err := s.CreateMetadata(ctx, artifact); err != nil {
		return false, err
	}
	return true, nil
}

// CreateMetadata unconditionally rebuilds the artifact's metadata record:
// download, extract control and digests, format the stanza, upload with the
// DebLastModified tag set to the artifact's current last-modified string.
func (s Service) CreateMetadata(ctx context.Context, artifact types.ObjectInfo) error {
	log.Info().Str("package", artifact.Name).Msg("creating metadata record")

	payload, err := s.Store.Download(ctx, artifact.Name)
	if err != nil {
		return err
	}
	info, err := s.Extractor.Extract(artifact.Name, payload)
	if err != nil {
		return err
	}
	core.ValidateControlInfo(ctx, info)

	body := core.FormatRecord(info, artifact.Name)
	tags := map[string]string{types.TagLastModified: artifact.LastModified}
	if err := s.Store.Upload(ctx, shared.MetadataName(artifact.Name), body, tags); err != nil {
		return err
	}
	log.Info().
		Str("package", artifact.Name).
		Int64("size", info.Size).
		Str("sha256", info.SHA256).
		Msg("metadata record written")
	return nil
}
