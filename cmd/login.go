package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/spf13/cobra"
)

var errMissingCredentials = errors.New("not signed in: provide --username and --password or set STOCKDASH_USERNAME and STOCKDASH_PASSWORD")

func newLoginCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the backend",
		Long:  "login signs in once and reports the identity the backend returned. The session lives only for the duration of the command.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := app.context(cmd)
			if err := signIn(ctx, app, app.credentials(username, password)); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), describeSession(app.auth.Session()))
			return err
		},
	}

	addCredentialFlags(cmd, &username, &password)

	return cmd
}

func signIn(ctx context.Context, app *app, credentials domain.Credentials) error {
	if credentials.Username == "" {
		return errMissingCredentials
	}

	return app.auth.Login(ctx, credentials)
}

// enterDashboard navigates to the dashboard, signing in first when the guard
// redirects to login.
func enterDashboard(ctx context.Context, app *app, credentials domain.Credentials) error {
	route, decision, err := app.navigator.Navigate(navigation.RouteDashboard)
	if err != nil {
		return err
	}
	if decision.Allowed {
		return nil
	}

	if err := signIn(ctx, app, credentials); err != nil {
		return err
	}

	route, decision, err = app.navigator.Navigate(navigation.RouteDashboard)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return fmt.Errorf("navigation to %s refused, redirected to %s", navigation.RouteDashboard, route.Name)
	}

	return nil
}

func describeSession(session domain.Session) string {
	if !session.Authenticated {
		return "signed out"
	}
	if session.UserID == "" {
		return fmt.Sprintf("logged in as %s", session.Username)
	}
	return fmt.Sprintf("logged in as %s (user %s)", session.Username, session.UserID)
}
