package navigation

import "github.com/bnema/stockdash/internal/domain"

type SessionReader interface {
	Session() domain.Session
}

type Decision struct {
	Allowed  bool
	Redirect RouteName
}

// Target is the route navigation ends up on.
func (d Decision) Target(requested RouteName) RouteName {
	if d.Allowed {
		return requested
	}
	return d.Redirect
}

// Guard allows the login route unconditionally and every other route only
// for an authenticated session. A nil reader is treated as anonymous.
func Guard(target RouteName, sessions SessionReader) Decision {
	if target == RouteLogin || authenticated(sessions) {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: RouteLogin}
}

func authenticated(sessions SessionReader) bool {
	if sessions == nil {
		return false
	}
	return sessions.Session().Authenticated
}
