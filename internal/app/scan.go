package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/core"
	"apt-repo-function/internal/shared"
)

// ScanPackages lists the whole container and checks every package artifact
// independently. A corrupt package is logged and skipped so one bad upload
// cannot block metadata repair for the rest of the repository; store errors
// abort the pass.
func (s Service) ScanPackages(ctx context.Context) (ScanResult, error) {
	objects, err := s.Store.List(ctx)
	if err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{}
	for _, object := range objects {
		if !shared.IsPackage(object.Name) {
			continue
		}
		result.Checked++
		rebuilt, err := s.CheckPackage(ctx, object)
		if err != nil {
			if core.IsCorruptPackage(err) {
				log.Error().Err(err).Str("package", object.Name).Msg("skipping corrupt package")
				result.Corrupt++
				continue
			}
			return result, err
		}
		if rebuilt {
			result.Rebuilt++
		}
	}
	log.Info().
		Int("checked", result.Checked).
		Int("rebuilt", result.Rebuilt).
		Int("corrupt", result.Corrupt).
		Msg("package scan complete")
	return result, nil
}
