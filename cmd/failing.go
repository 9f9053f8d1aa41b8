package cmd

import (
	"fmt"

	"github.com/semkit/ktest/internal/application"
	"github.com/spf13/cobra"
)

func newGetFailingCmd(app *app) *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "get-failing",
		Short: "Sample currently-failing artifact paths for triage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sampler := application.NewSampler(app.ledger)
			switch {
			case cmd.Flags().Changed("seed"):
				sampler = application.NewSeededSampler(app.ledger, seed)
			case app.samplerSeed != nil:
				sampler = application.NewSeededSampler(app.ledger, *app.samplerSeed)
			}

			paths, err := sampler.Sample(cmd.Context(), count)
			if err != nil {
				return err
			}

			for _, path := range paths {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Maximum number of failing paths to sample")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed for reproducible sampling")

	return cmd
}
