package cmd

import (
	"errors"
	"fmt"

	"github.com/semkit/ktest/internal/adapters/render/summary"
	"github.com/semkit/ktest/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session's pass/fail/runtime summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, err := app.ledger.Session(ctx)
			if err != nil && !errors.Is(err, domain.ErrNoSession) {
				return err
			}

			passing, err := app.ledger.Passing(ctx)
			if err != nil {
				return err
			}
			failing, err := app.ledger.Failing(ctx)
			if err != nil {
				return err
			}
			runtimes, err := app.ledger.Runtimes(ctx)
			if err != nil {
				return err
			}

			rendered := summary.Render(summary.Summary{
				Session:   session.Name,
				StartedAt: session.StartedAt,
				Passing:   passing,
				Failing:   failing,
				Runtimes:  runtimes,
			})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
