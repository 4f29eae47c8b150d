package cli

import (
	"context"

	"apt-repo-function/internal/adapters"
	"apt-repo-function/internal/app"
	"apt-repo-function/internal/config"
)

// newServiceFactory returns the factory trigger entry points use: every call
// loads the configuration and builds a fresh store client, so concurrent
// invocations share nothing.
func newServiceFactory() app.ServiceFactory {
	return func(_ context.Context) (app.Service, error) {
		cfg, err := config.Load()
		if err != nil {
			return app.Service{}, err
		}
		store, err := adapters.NewAzureBlobAdapter(cfg.ConnectionString, cfg.Container)
		if err != nil {
			return app.Service{}, err
		}
		return app.NewService(store), nil
	}
}

func newService(ctx context.Context) (app.Service, error) {
	return newServiceFactory()(ctx)
}
