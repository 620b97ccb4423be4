// Package web serves the local browser client. Every page request passes
// through the navigation guard before its handler runs.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

type Authenticator interface {
	Login(ctx context.Context, credentials domain.Credentials) error
	Logout(ctx context.Context)
	Session() domain.Session
}

type StockRefresher interface {
	Refresh(ctx context.Context) error
	Stock() domain.Stock
}

type Server struct {
	auth      Authenticator
	stocks    StockRefresher
	table     navigation.Table
	logger    zerolog.Logger
	templates *template.Template
}

func NewServer(auth Authenticator, stocks StockRefresher, table navigation.Table, logger zerolog.Logger) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		auth:      auth,
		stocks:    stocks,
		table:     table,
		logger:    logger,
		templates: templates,
	}, nil
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(s.logger), s.guard)

	r.HandleFunc(s.path(navigation.RouteLogin), s.loginPage).Methods(http.MethodGet)
	r.HandleFunc(s.path(navigation.RouteLogin), s.loginSubmit).Methods(http.MethodPost)
	r.HandleFunc(s.path(navigation.RouteDashboard), s.dashboardPage).Methods(http.MethodGet)
	r.HandleFunc("/logout", s.logout).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	}).Methods(http.MethodGet)

	return r
}

// guard resolves the matched path template to a route and redirects when the
// navigation guard refuses it. Paths outside the route table pass through.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := mux.CurrentRoute(r)
		if current == nil {
			next.ServeHTTP(w, r)
			return
		}

		tpl, err := current.GetPathTemplate()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		route, ok := s.table.ByPath(tpl)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		decision := navigation.Guard(route.Name, s.auth)
		if decision.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		zerolog.Ctx(r.Context()).Debug().
			Str("route", string(route.Name)).
			Str("redirect", string(decision.Redirect)).
			Msg("navigation refused")
		http.Redirect(w, r, s.path(decision.Redirect), http.StatusSeeOther)
	})
}

func (s *Server) path(name navigation.RouteName) string {
	route, ok := s.table.ByName(name)
	if !ok {
		return "/"
	}
	return route.Path
}

// Serve runs the server on listener until ctx is canceled, then shuts down gracefully.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
