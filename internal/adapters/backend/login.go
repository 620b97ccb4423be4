package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

var _ ports.AuthGateway = (*Client)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse accepts both the camelCase keys and the snake_case keys the
// Flask backend emits.
type loginResponse struct {
	AuthToken    string        `json:"authToken"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refreshToken"`
	RefreshSnake string        `json:"refresh_token"`
	UserID       domain.UserID `json:"userId"`
	UserIDSnake  domain.UserID `json:"user_id"`
}

func (r loginResponse) grant() ports.TokenGrant {
	return ports.TokenGrant{
		AuthToken:    firstNonEmpty(r.AuthToken, r.AccessToken),
		RefreshToken: firstNonEmpty(r.RefreshToken, r.RefreshSnake),
		UserID:       domain.UserID(firstNonEmpty(string(r.UserID), string(r.UserIDSnake))),
	}
}

func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (ports.TokenGrant, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", loginRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		return ports.TokenGrant{}, err
	}
	if !resp.ok() {
		return ports.TokenGrant{}, domain.ErrAuthenticationFailed
	}

	var decoded loginResponse
	if err := json.Unmarshal(resp.body, &decoded); err != nil {
		return ports.TokenGrant{}, fmt.Errorf("%w: decode body: %v", domain.ErrInvalidLoginResponse, err)
	}

	grant := decoded.grant()
	if strings.TrimSpace(grant.AuthToken) == "" {
		return ports.TokenGrant{}, fmt.Errorf("%w: missing auth token", domain.ErrInvalidLoginResponse)
	}
	if grant.UserID == "" {
		grant.UserID = subjectFromToken(grant.AuthToken)
	}

	return grant, nil
}

// subjectFromToken reads the identity claim without verifying the signature.
// The client holds no key; the backend verifies its own tokens.
func subjectFromToken(token string) domain.UserID {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	switch sub := claims["sub"].(type) {
	case string:
		return domain.UserID(sub)
	case float64:
		return domain.UserID(fmt.Sprintf("%.0f", sub))
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
