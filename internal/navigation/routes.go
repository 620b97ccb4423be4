// Package navigation holds the static route table and the guard that runs
// before every transition.
package navigation

import "errors"

var ErrUnknownRoute = errors.New("unknown route")

type RouteName string

const (
	RouteLogin     RouteName = "login"
	RouteDashboard RouteName = "dashboard"
)

type Route struct {
	Name RouteName
	Path string
}

type Table struct {
	routes []Route
}

// DefaultTable maps "/" to the login view and "/dash" to the dashboard.
func DefaultTable() Table {
	return Table{routes: []Route{
		{Name: RouteLogin, Path: "/"},
		{Name: RouteDashboard, Path: "/dash"},
	}}
}

func (t Table) Routes() []Route {
	routes := make([]Route, len(t.routes))
	copy(routes, t.routes)
	return routes
}

func (t Table) ByName(name RouteName) (Route, bool) {
	for _, route := range t.routes {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}

func (t Table) ByPath(path string) (Route, bool) {
	for _, route := range t.routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}
