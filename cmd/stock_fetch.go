package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/stockdash/internal/adapters/render/dashboard"
	"github.com/bnema/stockdash/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type stockFetchFunc func(context.Context) (application.RefreshResult, error)

type stockFetchedMsg struct {
	result application.RefreshResult
	err    error
}

// stockFetchModel shows a spinner while one stock fetch is in flight and
// leaves its outcome as the final line.
type stockFetchModel struct {
	spinner spinner.Model
	ticker  string
	fetch   tea.Cmd
	result  application.RefreshResult
	err     error
	done    bool
}

func newStockFetchModel(ctx context.Context, ticker string, fetch stockFetchFunc) stockFetchModel {
	return stockFetchModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(dashboard.SpinnerStyle()),
		),
		ticker: ticker,
		fetch: func() tea.Msg {
			result, err := fetch(ctx)
			return stockFetchedMsg{result: result, err: err}
		},
	}
}

func (m stockFetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m stockFetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stockFetchedMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m stockFetchModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Fetching stock %s...", m.spinner.View(), m.ticker)
	}

	return dashboard.FetchStatus(dashboard.FetchOutcome{
		Ticker:    m.ticker,
		Stock:     m.result.Stock,
		Discarded: m.result.Discarded,
		Err:       m.err,
	}) + "\n"
}

func runStockFetch(ctx context.Context, output io.Writer, ticker string, fetch stockFetchFunc) (application.RefreshResult, error) {
	p := tea.NewProgram(
		newStockFetchModel(ctx, ticker, fetch),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.RefreshResult{}, err
	}

	final, ok := finalModel.(stockFetchModel)
	if !ok {
		return application.RefreshResult{}, fmt.Errorf("unexpected final fetch model type %T", finalModel)
	}

	return final.result, final.err
}
