package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type inspectOptions struct {
	Output string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the current repository index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			result, err := service.Inspect(cmd.Context())
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(result.Report)
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to marshal index report").
					WithCause(err)
			}
			if opts.Output == "" || opts.Output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.Output, data, 0644); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to write index report").
					WithCause(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "-", "Report output path (- for stdout)")
	return cmd
}
