package tui

import (
	"fmt"

	"github.com/bnema/stockdash/internal/adapters/render/dashboard"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	helpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func (m Model) View() string {
	if m.navErr != nil {
		return errorStyle.Render(fmt.Sprintf("navigation: %v", m.navErr))
	}

	if m.route.Name == navigation.RouteDashboard {
		return m.dashboardView()
	}

	return m.loginView()
}

func (m Model) loginView() string {
	lines := []string{
		titleStyle.Render("Sign in"),
		m.username.View(),
		m.password.View(),
	}

	if m.busy {
		lines = append(lines, fmt.Sprintf("%s Signing in...", m.spinner.View()))
	}
	if m.err != nil {
		lines = append(lines, errorStyle.Render(m.err.Error()))
	}

	lines = append(lines, helpStyle.Render("tab switch field • enter submit • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) dashboardView() string {
	lines := []string{
		dashboard.View(dashboard.Snapshot{
			Session: m.auth.Session(),
			Stock:   m.stocks.Stock(),
			Err:     m.err,
		}),
	}

	if m.busy {
		lines = append(lines, fmt.Sprintf("%s Fetching stock...", m.spinner.View()))
	}

	lines = append(lines, helpStyle.Render("r refresh • l log out • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
