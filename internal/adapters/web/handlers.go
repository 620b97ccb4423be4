package web

import (
	"errors"
	"net/http"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/navigation"
	"github.com/rs/zerolog"
)

type loginView struct {
	Title    string
	Username string
	Error    string
}

type dashboardView struct {
	Title   string
	Session domain.Session
	Stock   domain.Stock
	Error   string
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", loginView{Title: "Sign in"})
}

func (s *Server) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	credentials := domain.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	if err := s.auth.Login(r.Context(), credentials); err != nil {
		status, message := http.StatusBadGateway, "login failed"
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			status, message = http.StatusUnauthorized, domain.ErrAuthenticationFailed.Error()
		}

		s.render(w, r, status, "login", loginView{
			Title:    "Sign in",
			Username: credentials.Username,
			Error:    message,
		})
		return
	}

	http.Redirect(w, r, s.path(navigation.RouteDashboard), http.StatusSeeOther)
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	view := dashboardView{Title: "Stock Dashboard", Session: s.auth.Session()}
	status := http.StatusOK

	if err := s.stocks.Refresh(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("stock refresh failed")
		status = http.StatusBadGateway
		view.Error = err.Error()
	}

	view.Stock = s.stocks.Stock()
	s.render(w, r, status, "dashboard", view)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(r.Context())
	http.Redirect(w, r, s.path(navigation.RouteLogin), http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render page")
	}
}
