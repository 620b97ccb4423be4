package navigation

import (
	"fmt"
	"sync"
)

type Navigator struct {
	table    Table
	sessions SessionReader

	mu      sync.Mutex
	current Route
}

func NewNavigator(table Table, sessions SessionReader) *Navigator {
	return &Navigator{table: table, sessions: sessions}
}

// Navigate runs the guard for target and moves to the resulting route.
func (n *Navigator) Navigate(target RouteName) (Route, Decision, error) {
	decision := Guard(target, n.sessions)

	route, ok := n.table.ByName(decision.Target(target))
	if !ok {
		return Route{}, decision, fmt.Errorf("%w: %q", ErrUnknownRoute, decision.Target(target))
	}

	n.mu.Lock()
	n.current = route
	n.mu.Unlock()

	return route, decision, nil
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}
