package dashboard

import (
	"fmt"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Snapshot is what the dashboard shows: who is signed in and the current stock.
type Snapshot struct {
	Session domain.Session
	Stock   domain.Stock
	Err     error
}

type field struct {
	label string
	value string
}

func renderView(snapshot Snapshot, s styles) string {
	lines := []string{
		s.title.Render("Stock Dashboard"),
		s.header.Render(sessionLine(snapshot.Session)),
	}

	if snapshot.Err != nil {
		lines = append(lines, s.warning.Render(fmt.Sprintf("error: %v", snapshot.Err)))
	}

	lines = append(lines, s.section.Render(renderStock(snapshot.Stock, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session) string {
	if !session.Authenticated {
		return "signed out"
	}

	if session.UserID == "" {
		return fmt.Sprintf("signed in as %s", session.Username)
	}

	return fmt.Sprintf("signed in as %s (user %s)", session.Username, session.UserID)
}

func renderStock(stock domain.Stock, s styles) string {
	parts := []string{s.ticker.Render(stockTitle(stock))}

	fields := []field{
		{label: "exchange", value: stock.Exchange},
		{label: "sector", value: stock.Sector},
		{label: "industry", value: stock.Industry},
		{label: "market cap", value: stock.MarketCap},
		{label: "shares", value: stock.NoShares},
		{label: "trailing p/e", value: stock.TrailPERatio},
		{label: "forward p/e", value: stock.FwdPERatio},
		{label: "dividend yield", value: stock.DividendYield},
		{label: "52w high", value: stock.High52W},
		{label: "52w low", value: stock.Low52W},
		{label: "eps", value: stock.EPS},
	}

	for _, f := range fields {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(f.label+":"), s.value.Render(valueOrNA(f.value))))
	}

	if stock.Description != "" {
		parts = append(parts, s.section.Render(s.empty.Render(stock.Description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func stockTitle(stock domain.Stock) string {
	if stock.Name == "" {
		return stock.Ticker
	}

	return fmt.Sprintf("%s (%s)", stock.Name, stock.Ticker)
}

func valueOrNA(value string) string {
	if value == "" {
		return "n/a"
	}

	return value
}
