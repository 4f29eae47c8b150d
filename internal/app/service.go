package app

import (
	"context"

	"apt-repo-function/internal/adapters"
	"apt-repo-function/internal/ports"
)

// Service wires the repository maintenance operations to their collaborators.
// One Service is constructed per trigger invocation; there is no process-wide
// store client or other shared mutable state.
type Service struct {
	Store     ports.BlobStorePort
	Extractor ports.ExtractorPort
}

func NewService(store ports.BlobStorePort) Service {
	return Service{
		Store:     store,
		Extractor: adapters.NewDebExtractorAdapter(),
	}
}

// ServiceFactory builds a fresh Service for one trigger invocation. Trigger
// entry points receive a factory rather than a Service so that concurrent
// invocations never share a client session.
type ServiceFactory func(ctx context.Context) (Service, error)
