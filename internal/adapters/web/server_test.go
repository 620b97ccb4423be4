package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/bnema/stockdash/internal/state"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	sessions *state.SessionStore
	err      error
	calls    []domain.Credentials
}

func (f *fakeAuth) Login(_ context.Context, credentials domain.Credentials) error {
	f.calls = append(f.calls, credentials)
	if f.err != nil {
		return fmt.Errorf("login %q: %w", credentials.Username, f.err)
	}
	f.sessions.MarkAuthenticated(domain.SessionGrant{Username: credentials.Username, AuthToken: "t1", UserID: "7"})
	return nil
}

func (f *fakeAuth) Logout(context.Context) {
	f.sessions.MarkUnauthenticated()
}

func (f *fakeAuth) Session() domain.Session {
	return f.sessions.Session()
}

type fakeStocks struct {
	err       error
	refreshes int
}

func (f *fakeStocks) Refresh(context.Context) error {
	f.refreshes++
	return f.err
}

func (f *fakeStocks) Stock() domain.Stock {
	stock := domain.NewStock("XOM")
	stock.Name = "Exxon Mobil"
	stock.Sector = "Energy"
	return stock
}

type fixture struct {
	sessions *state.SessionStore
	auth     *fakeAuth
	stocks   *fakeStocks
	handler  http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	sessions := state.NewSessionStore()
	auth := &fakeAuth{sessions: sessions}
	stocks := &fakeStocks{}

	server, err := NewServer(auth, stocks, navigation.DefaultTable(), zerolog.Nop())
	require.NoError(t, err)

	return fixture{sessions: sessions, auth: auth, stocks: stocks, handler: server.Handler()}
}

func (f fixture) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRedirectsAnonymousToLogin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := f.do(http.MethodGet, "/dash", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Zero(t, f.stocks.refreshes)
}

func TestLoginPageIsPublic(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Sign in</h1>")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestLoginSubmitRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := f.do(http.MethodPost, "/", url.Values{"username": {"alice"}, "password": {"pw"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dash", rec.Header().Get("Location"))
	assert.Equal(t, []domain.Credentials{{Username: "alice", Password: "pw"}}, f.auth.calls)
	assert.True(t, f.sessions.Authenticated())
}

func TestLoginSubmitShowsAuthenticationFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.auth.err = domain.ErrAuthenticationFailed

	rec := f.do(http.MethodPost, "/", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication failed")
	assert.Contains(t, rec.Body.String(), `value="alice"`)
	assert.NotContains(t, rec.Body.String(), "wrong")
	assert.False(t, f.sessions.Authenticated())
}

func TestLoginSubmitShowsGenericFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.auth.err = domain.ErrInvalidLoginResponse

	rec := f.do(http.MethodPost, "/", url.Values{"username": {"alice"}, "password": {"pw"}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "login failed")
}

func TestDashboardRendersStockForAuthenticatedSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sessions.MarkAuthenticated(domain.SessionGrant{Username: "alice", AuthToken: "t1", UserID: "7"})

	rec := f.do(http.MethodGet, "/dash", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.stocks.refreshes)
	assert.Contains(t, rec.Body.String(), "signed in as alice (user 7)")
	assert.Contains(t, rec.Body.String(), "Exxon Mobil (XOM)")
	assert.Contains(t, rec.Body.String(), "<dd>Energy</dd>")
	assert.Contains(t, rec.Body.String(), "<dd>NYSE</dd>")
}

func TestDashboardShowsRefreshFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sessions.MarkAuthenticated(domain.SessionGrant{Username: "alice", AuthToken: "t1"})
	f.stocks.err = fmt.Errorf("fetch stock XOM: %w: status 500", domain.ErrStockFetchFailed)

	rec := f.do(http.MethodGet, "/dash", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "stock fetch failed")
	assert.Contains(t, rec.Body.String(), "Exxon Mobil (XOM)")
}

func TestLogoutClearsSessionAndGuardsDashboard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sessions.MarkAuthenticated(domain.SessionGrant{Username: "alice", AuthToken: "t1"})

	rec := f.do(http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, domain.Session{}, f.sessions.Session())

	rec = f.do(http.MethodGet, "/dash", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestHealthBypassesGuard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}

func TestServeStopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, listener, f.handler)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
