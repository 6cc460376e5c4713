package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server, or with --local that the lexicon loads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			result, err := engine.Health(cmd.Context())
			if err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}
