package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UserID identifies a backend user. The backend issues numeric ids but the
// client only ever displays or forwards them.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

type Credentials struct {
	Username string
	Password string
}

// SessionGrant is the token material handed to MarkAuthenticated after a
// successful login.
type SessionGrant struct {
	Username     string
	AuthToken    string
	RefreshToken string
	UserID       UserID
}

type Session struct {
	Authenticated bool
	AuthToken     string
	RefreshToken  string
	UserID        UserID
	Username      string
	IsAdmin       bool
}

// MarkAuthenticated returns the session after a successful login. IsAdmin is
// always false: role derivation is not implemented.
func (s Session) MarkAuthenticated(grant SessionGrant) Session {
	s.Authenticated = true
	s.AuthToken = grant.AuthToken
	s.RefreshToken = grant.RefreshToken
	s.UserID = grant.UserID
	s.Username = grant.Username
	s.IsAdmin = false
	return s
}

// MarkUnauthenticated returns the initial, anonymous session.
func (s Session) MarkUnauthenticated() Session {
	return Session{}
}
