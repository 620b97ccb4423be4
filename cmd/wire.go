package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/stockdash/internal/adapters/backend"
	tomlconfig "github.com/bnema/stockdash/internal/adapters/config/toml"
	"github.com/bnema/stockdash/internal/adapters/render/dashboard"
	"github.com/bnema/stockdash/internal/application"
	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/logger"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/bnema/stockdash/internal/state"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	settings  tomlconfig.Settings
	config    *tomlconfig.Repository
	logger    zerolog.Logger
	sessions  *state.SessionStore
	table     navigation.Table
	navigator *navigation.Navigator
	auth      *application.AuthService
	stock     *application.StockService
	renderer  func(dashboard.Snapshot) (string, error)
}

func wireApp() (*app, error) {
	config, err := tomlconfig.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	settings, err := config.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Setup(os.Stderr, settings.LogLevel, settings.LogConsole)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewClient(settings.BaseURL, &http.Client{Timeout: settings.Timeout})
	if err != nil {
		return nil, fmt.Errorf("wire backend client: %w", err)
	}

	sessions := state.NewSessionStore()
	stocks := state.NewStockStore(settings.Ticker)
	table := navigation.DefaultTable()

	return &app{
		settings:  settings,
		config:    config,
		logger:    log,
		sessions:  sessions,
		table:     table,
		navigator: navigation.NewNavigator(table, sessions),
		auth:      application.NewAuthService(client, sessions),
		stock:     application.NewStockService(client, stocks),
		renderer:  dashboard.Render,
	}, nil
}

// context returns the command context carrying the app logger.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a.logger.WithContext(ctx)
}

// credentials prefers explicit flag values over configured ones.
func (a *app) credentials(username, password string) domain.Credentials {
	if username == "" {
		username = a.settings.Username
	}
	if password == "" {
		password = a.settings.Password
	}
	return domain.Credentials{Username: username, Password: password}
}

func addCredentialFlags(cmd *cobra.Command, username, password *string) {
	cmd.Flags().StringVar(username, "username", "", "Username (defaults to STOCKDASH_USERNAME)")
	cmd.Flags().StringVar(password, "password", "", "Password (defaults to STOCKDASH_PASSWORD)")
}
