package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild Packages and Packages.xz from the current metadata records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			result, err := service.AssembleIndex(cmd.Context())
			if err != nil {
				return err
			}
			log.Info().
				Int("records", result.Records).
				Int("index_bytes", result.IndexSize).
				Int("compressed_bytes", result.CompressedSize).
				Msg("index rebuild complete")
			return nil
		},
	}
}
