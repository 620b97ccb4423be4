// Package tui is the interactive terminal client: a login view and a
// dashboard view, switched through the navigation guard.
package tui

import (
	"context"
	"errors"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type Authenticator interface {
	Login(ctx context.Context, credentials domain.Credentials) error
	Logout(ctx context.Context)
	Session() domain.Session
}

type StockRefresher interface {
	Refresh(ctx context.Context) error
	Stock() domain.Stock
}

type loginDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

const (
	focusUsername = iota
	focusPassword
)

type Model struct {
	ctx       context.Context
	auth      Authenticator
	stocks    StockRefresher
	navigator *navigation.Navigator

	route    navigation.Route
	username textinput.Model
	password textinput.Model
	focus    int
	spinner  spinner.Model
	busy     bool
	err      error
	navErr   error
}

// New builds the model and performs the first navigation to the dashboard;
// an anonymous session lands on the login view.
func New(ctx context.Context, auth Authenticator, stocks StockRefresher, navigator *navigation.Navigator) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "username: "
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		ctx:       ctx,
		auth:      auth,
		stocks:    stocks,
		navigator: navigator,
		username:  username,
		password:  password,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
	}
	m.route, m.navErr = m.navigate(navigation.RouteDashboard)
	m.busy = m.route.Name == navigation.RouteDashboard

	return m
}

func (m Model) Route() navigation.RouteName {
	return m.route.Name
}

func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if m.busy {
		return tea.Batch(m.spinner.Tick, m.refreshCmd())
	}

	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.route.Name == navigation.RouteDashboard {
			return m.updateDashboard(msg)
		}
		return m.updateLogin(msg)
	case loginDoneMsg:
		return m.loginDone(msg)
	case refreshDoneMsg:
		m.busy = false
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return m, m.toggleFocus()
	case tea.KeyEnter:
		if m.focus == focusUsername {
			return m, m.toggleFocus()
		}
		return m.submitLogin()
	}

	return m.updateInputs(msg)
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
	case "l":
		m.auth.Logout(m.ctx)
		m.err = nil
		m.busy = false
		m.password.Reset()
		m.route, m.navErr = m.navigate(navigation.RouteDashboard)
		return m, m.focusOn(focusUsername)
	}

	return m, nil
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	credentials := domain.Credentials{
		Username: m.username.Value(),
		Password: m.password.Value(),
	}
	m.busy = true
	m.err = nil

	ctx, auth := m.ctx, m.auth
	login := func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, credentials)}
	}

	return m, tea.Batch(m.spinner.Tick, login)
}

func (m Model) loginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.err = msg.err
		m.password.Reset()
		return m, nil
	}

	m.password.Reset()
	m.route, m.navErr = m.navigate(navigation.RouteDashboard)
	if m.route.Name != navigation.RouteDashboard {
		return m, nil
	}

	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, stocks := m.ctx, m.stocks
	return func() tea.Msg {
		return refreshDoneMsg{err: stocks.Refresh(ctx)}
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusUsername {
		return m.focusOn(focusPassword)
	}
	return m.focusOn(focusUsername)
}

func (m *Model) focusOn(field int) tea.Cmd {
	m.focus = field
	if field == focusPassword {
		m.username.Blur()
		return m.password.Focus()
	}

	m.password.Blur()
	return m.username.Focus()
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.route.Name != navigation.RouteLogin {
		return m, nil
	}

	var usernameCmd, passwordCmd tea.Cmd
	m.username, usernameCmd = m.username.Update(msg)
	m.password, passwordCmd = m.password.Update(msg)

	return m, tea.Batch(usernameCmd, passwordCmd)
}

func (m Model) navigate(target navigation.RouteName) (navigation.Route, error) {
	if m.navigator == nil {
		return navigation.Route{Name: navigation.RouteLogin, Path: "/"}, nil
	}

	route, _, err := m.navigator.Navigate(target)
	return route, err
}

// Run starts the interactive program and returns the final model.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Model{}, err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return Model{}, ErrUnexpectedModel
	}

	return final, nil
}
