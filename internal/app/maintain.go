package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/shared"
)

// RunMaintenancePass is the single maintenance sequence both trigger entry
// points invoke: repair stale or missing metadata across the entire
// repository, then rebuild both index artifacts from scratch. The full rescan
// makes every pass self-healing; work missed by a failed earlier pass is
// picked up here.
func (s Service) RunMaintenancePass(ctx context.Context) (MaintainResult, error) {
	scan, err := s.ScanPackages(ctx)
	if err != nil {
		return MaintainResult{Scan: scan}, err
	}
	assemble, err := s.AssembleIndex(ctx)
	if err != nil {
		return MaintainResult{Scan: scan}, err
	}
	return MaintainResult{Scan: scan, Assemble: assemble}, nil
}

// HandleBlobEvent processes a storage-change notification for one object.
// The object's identity is only a relevance filter: anything that is not a
// package artifact is ignored, and a package artifact triggers a pass over
// the whole container.
func HandleBlobEvent(ctx context.Context, factory ServiceFactory, name string, size int64) error {
	log.Info().Str("blob", name).Int64("size", size).Msg("blob change notification")
	if !shared.IsPackage(name) {
		log.Info().Str("blob", name).Msg("not a debian package, ignoring")
		return nil
	}
	service, err := factory(ctx)
	if err != nil {
		return err
	}
	_, err = service.RunMaintenancePass(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("blob", name).Msg("done processing blob event")
	return nil
}

// HandleGridEvent processes a generic eventing callback. The subscription is
// already scoped to package uploads, so every event runs a full pass.
func HandleGridEvent(ctx context.Context, factory ServiceFactory, eventID string) error {
	log.Info().Str("event", eventID).Msg("processing grid event")
	service, err := factory(ctx)
	if err != nil {
		return err
	}
	_, err = service.RunMaintenancePass(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("event", eventID).Msg("done processing grid event")
	return nil
}
