package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/stockdash/internal/adapters/render/dashboard"
	"github.com/bnema/stockdash/internal/application"
	"github.com/bnema/stockdash/internal/domain"
	"github.com/spf13/cobra"
)

type sessionOutput struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	UserID        string `json:"user_id,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
}

// stockOutput uses the backend's field names.
type stockOutput struct {
	Ticker        string `json:"ticker"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Description   string `json:"description"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	MarketCap     string `json:"market_cap"`
	NoShares      string `json:"no_shares"`
	TrailPERatio  string `json:"trail_pe_ratio"`
	FwdPERatio    string `json:"fwd_pe_ratio"`
	DividendYield string `json:"d_yield"`
	High52W       string `json:"high_52w"`
	Low52W        string `json:"low_52w"`
	EPS           string `json:"eps"`
	LastCacheTime string `json:"last_cache_time"`
	CacheResponse string `json:"cache_response"`
	Timeseries    string `json:"timeseries"`
}

func newStockOutput(stock domain.Stock) stockOutput {
	return stockOutput{
		Ticker:        stock.Ticker,
		Name:          stock.Name,
		Exchange:      stock.Exchange,
		Description:   stock.Description,
		Sector:        stock.Sector,
		Industry:      stock.Industry,
		MarketCap:     stock.MarketCap,
		NoShares:      stock.NoShares,
		TrailPERatio:  stock.TrailPERatio,
		FwdPERatio:    stock.FwdPERatio,
		DividendYield: stock.DividendYield,
		High52W:       stock.High52W,
		Low52W:        stock.Low52W,
		EPS:           stock.EPS,
		LastCacheTime: stock.LastCacheTime,
		CacheResponse: stock.CacheResponse,
		Timeseries:    stock.Timeseries,
	}
}

type dashboardOutput struct {
	Session sessionOutput `json:"session"`
	Stock   stockOutput   `json:"stock"`
}

func newDashboardCmd(app *app) *cobra.Command {
	var (
		username string
		password string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Sign in, fetch the configured stock and print the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, app, app.credentials(username, password), asJSON)
		},
	}

	addCredentialFlags(cmd, &username, &password)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output dashboard as JSON")

	return cmd
}

func runDashboard(cmd *cobra.Command, app *app, credentials domain.Credentials, asJSON bool) error {
	ctx := app.context(cmd)

	if err := enterDashboard(ctx, app, credentials); err != nil {
		return err
	}

	var (
		result application.RefreshResult
		err    error
	)
	if asJSON {
		result, err = app.stock.Fetch(ctx)
	} else {
		result, err = runStockFetch(ctx, cmd.ErrOrStderr(), app.stock.Stock().Ticker, app.stock.Fetch)
	}
	if err != nil {
		return err
	}

	snapshot := dashboard.Snapshot{Session: app.auth.Session(), Stock: result.Stock}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dashboardOutput{
			Session: sessionOutput{
				Authenticated: snapshot.Session.Authenticated,
				Username:      snapshot.Session.Username,
				UserID:        string(snapshot.Session.UserID),
				IsAdmin:       snapshot.Session.IsAdmin,
			},
			Stock: newStockOutput(snapshot.Stock),
		})
	}

	rendered, err := app.renderer(snapshot)
	if err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
