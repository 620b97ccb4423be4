package application

import (
	"context"
	"fmt"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/ports"
	"github.com/bnema/stockdash/internal/state"
	"github.com/rs/zerolog"
)

type AuthService struct {
	gateway  ports.AuthGateway
	sessions *state.SessionStore
}

func NewAuthService(gateway ports.AuthGateway, sessions *state.SessionStore) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions}
}

// Login authenticates against the backend and marks the session
// authenticated. The session is left untouched on any error.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) error {
	grant, err := s.gateway.Login(ctx, credentials)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("username", credentials.Username).Msg("login rejected")
		return fmt.Errorf("login %q: %w", credentials.Username, err)
	}

	session := s.sessions.MarkAuthenticated(domain.SessionGrant{
		Username:     credentials.Username,
		AuthToken:    grant.AuthToken,
		RefreshToken: grant.RefreshToken,
		UserID:       grant.UserID,
	})

	zerolog.Ctx(ctx).Debug().
		Str("username", session.Username).
		Str("user_id", string(session.UserID)).
		Bool("has_refresh_token", session.RefreshToken != "").
		Msg("session authenticated")

	return nil
}

// Logout clears the local session. No backend call is made.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.MarkUnauthenticated()
	zerolog.Ctx(ctx).Debug().Msg("session cleared")
}

func (s *AuthService) Session() domain.Session {
	return s.sessions.Session()
}
