package cmd

import "github.com/spf13/cobra"

func newInterpretCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interpret <program>",
		Short: "Run a program through the bare interpreter, no extra parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.executor.Interpret(cmd.Context(), args[0])
			return app.deliver(cmd, result, err)
		},
	}
}
