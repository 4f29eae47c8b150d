package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Repair stale or missing metadata records without rebuilding the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			result, err := service.ScanPackages(cmd.Context())
			if err != nil {
				return err
			}
			log.Info().
				Int("checked", result.Checked).
				Int("rebuilt", result.Rebuilt).
				Int("corrupt", result.Corrupt).
				Msg("metadata check complete")
			return nil
		},
	}
}
