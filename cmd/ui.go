package cmd

import (
	"github.com/bnema/stockdash/internal/adapters/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := app.context(cmd)

			credentials := app.credentials(username, password)
			if credentials.Username != "" {
				if err := signIn(ctx, app, credentials); err != nil {
					return err
				}
			}

			model := tui.New(ctx, app.auth, app.stock, app.navigator)
			_, err := tui.Run(ctx, model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			return err
		},
	}

	addCredentialFlags(cmd, &username, &password)

	return cmd
}
