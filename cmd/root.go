package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ktest",
		Short:         "ktest: test harness for the ksem semantics toolchain",
		Long:          "ktest classifies test artifacts by path convention, runs them under the ksem interpreter or prover, records pass/fail/runtime outcomes in append-only ledgers, and samples failing tests for triage.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newDebugCmd(app),
		newSearchCmd(app),
		newInterpretCmd(app),
		newProveCmd(app),
		newTestCmd(app),
		newTestProfileCmd(app),
		newGetFailingCmd(app),
		newStatusCmd(app),
		newResetCmd(app),
	)

	return rootCmd
}
