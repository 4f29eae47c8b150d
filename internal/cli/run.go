package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one maintenance pass: repair metadata, rebuild the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			result, err := service.RunMaintenancePass(cmd.Context())
			if err != nil {
				return err
			}
			log.Info().
				Int("checked", result.Scan.Checked).
				Int("rebuilt", result.Scan.Rebuilt).
				Int("records", result.Assemble.Records).
				Msg("maintenance pass complete")
			return nil
		},
	}
}
