package dashboard

import (
	"fmt"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FetchOutcome describes how a stock fetch ended.
type FetchOutcome struct {
	Ticker    string
	Stock     domain.Stock
	Discarded bool
	Err       error
}

func SpinnerStyle() lipgloss.Style {
	return newStyles().spinner
}

// FetchStatus is the one-line summary printed once a fetch resolves.
func FetchStatus(outcome FetchOutcome) string {
	s := newStyles()

	switch {
	case outcome.Err != nil:
		return s.warning.Render(fmt.Sprintf("✗ %s: %v", outcome.Ticker, outcome.Err))
	case outcome.Discarded:
		return s.empty.Render(fmt.Sprintf("• %s: response overtaken by a newer request, kept current data", outcome.Ticker))
	default:
		return s.success.Render(fmt.Sprintf("✓ %s", stockTitle(outcome.Stock)))
	}
}
