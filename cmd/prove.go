package cmd

import (
	"github.com/semkit/ktest/internal/domain"
	"github.com/spf13/cobra"
)

func newProveCmd(app *app) *cobra.Command {
	var module string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "prove <spec>",
		Short: "Run the deductive prover against a specification artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result domain.ExecutionResult
			var err error

			prove := func() {
				result, err = app.executor.Prove(cmd.Context(), args[0], module)
			}

			if quiet {
				prove()
			} else {
				if spinErr := runProveSpinner(cmd.Context(), cmd.ErrOrStderr(), args[0], prove); spinErr != nil {
					return spinErr
				}
			}

			return app.deliver(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&module, "module", app.tools.ProofModule, "Verification module name")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Disable the progress spinner")

	return cmd
}
