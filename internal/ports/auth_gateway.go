package ports

import (
	"context"

	"github.com/bnema/stockdash/internal/domain"
)

// TokenGrant is the token material returned by a successful login.
type TokenGrant struct {
	AuthToken    string
	RefreshToken string
	UserID       domain.UserID
}

type AuthGateway interface {
	Login(ctx context.Context, credentials domain.Credentials) (TokenGrant, error)
}
