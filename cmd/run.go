package cmd

import (
	"github.com/semkit/ktest/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var mode, schedule string

	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Run a program under the semantics interpreter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.executor.Run(cmd.Context(), args[0], application.RunOptions{
				Mode:     mode,
				Schedule: schedule,
			})
			return app.deliver(cmd, result, err)
		},
	}

	addRunFlags(cmd, app, &mode, &schedule)

	return cmd
}

func newDebugCmd(app *app) *cobra.Command {
	var mode, schedule string

	cmd := &cobra.Command{
		Use:   "debug <program>",
		Short: "Run a program with the interpreter's debugger attached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.executor.Run(cmd.Context(), args[0], application.RunOptions{
				Mode:     mode,
				Schedule: schedule,
				Debugger: true,
			})
			return app.deliver(cmd, result, err)
		},
	}

	addRunFlags(cmd, app, &mode, &schedule)

	return cmd
}

func newSearchCmd(app *app) *cobra.Command {
	var mode, schedule string

	cmd := &cobra.Command{
		Use:   "search <program>",
		Short: "Search all reachable final states of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.executor.Run(cmd.Context(), args[0], application.RunOptions{
				Mode:     mode,
				Schedule: schedule,
				Search:   true,
			})
			return app.deliver(cmd, result, err)
		},
	}

	addRunFlags(cmd, app, &mode, &schedule)

	return cmd
}

func addRunFlags(cmd *cobra.Command, app *app, mode, schedule *string) {
	cmd.Flags().StringVar(mode, "mode", app.tools.Mode, "Interpreter mode token")
	cmd.Flags().StringVar(schedule, "schedule", app.tools.Schedule, "Interpreter schedule token")
}
