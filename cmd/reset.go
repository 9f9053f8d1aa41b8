package cmd

import (
	"fmt"

	ledgerfile "github.com/semkit/ktest/internal/adapters/ledger/file"
	"github.com/spf13/cobra"
)

func newResetCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Truncate the ledgers and start a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := ledgerfile.Session{
				Name:      name,
				StartedAt: app.clock.Now(),
			}

			if err := app.ledger.Reset(cmd.Context(), session); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ledger reset in %s\n", app.ledger.Dir())
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Session name recorded in the manifest")

	return cmd
}
