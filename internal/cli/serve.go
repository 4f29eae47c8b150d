package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gorilla/handlers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apt-repo-function/internal/adapters"
	"apt-repo-function/internal/app"
	"apt-repo-function/internal/config"
	"apt-repo-function/internal/trigger"
)

type serveOptions struct {
	Port int
	Dev  bool
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the function-host trigger endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.Port, "port", 0, "Listen port (0 = FUNCTIONS_CUSTOMHANDLER_PORT or 8080)")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Use an in-memory container instead of blob storage")
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(_ context.Context, opts serveOptions) error {
	var factory app.ServiceFactory
	port := opts.Port

	if opts.Dev {
		// One shared in-memory container for the process; the factory still
		// hands out a fresh Service per invocation.
		store := adapters.NewMemoryBlobAdapter()
		factory = func(_ context.Context) (app.Service, error) {
			return app.NewService(store), nil
		}
		if port == 0 {
			port = 8080
		}
		log.Warn().Msg("dev mode: using in-memory container")
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if port == 0 {
			port = cfg.Port
		}
		factory = newServiceFactory()
	}

	router := trigger.NewRouter(factory)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handlers.LoggingHandler(os.Stdout, router),
	}
	log.Info().Int("port", port).Msg("listening for trigger invocations")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("trigger server failed").
			WithCause(err)
	}
	return nil
}
