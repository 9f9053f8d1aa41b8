package cmd

import "github.com/spf13/cobra"

func newTestCmd(app *app) *cobra.Command {
	var expected string

	cmd := &cobra.Command{
		Use:   "test <artifact>",
		Short: "Classify an artifact by path and execute the matching strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.executor.Test(cmd.Context(), args[0], expectedPath(args[0], expected), cmd.ErrOrStderr())
			return app.deliver(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&expected, "expected", "", "Expected-output file for interactive artifacts (default <artifact>.out)")

	return cmd
}

func newTestProfileCmd(app *app) *cobra.Command {
	var expected string

	cmd := &cobra.Command{
		Use:   "test-profile <artifact>",
		Short: "Run a test and record its outcome and runtime in the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.profiler.Profile(cmd.Context(), args[0], expectedPath(args[0], expected), cmd.ErrOrStderr())
			return app.deliver(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&expected, "expected", "", "Expected-output file for interactive artifacts (default <artifact>.out)")

	return cmd
}

// expectedPath applies the <artifact>.out convention unless the caller
// supplied an explicit expected-output file.
func expectedPath(artifact, flag string) string {
	if flag != "" {
		return flag
	}
	return artifact + ".out"
}
