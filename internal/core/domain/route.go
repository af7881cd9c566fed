package domain

import "strings"

// Route is a named logical screen, distinct from the URL path it is bound
// to. The set is closed; unmapped paths resolve to RouteHome.
type Route string

const (
	RouteHome     Route = "home"
	RouteProfile  Route = "profile"
	RouteSettings Route = "settings"
)

// DefaultRoute is the fallback for unrecognised paths.
const DefaultRoute = RouteHome

// routeToPath binds each route to its canonical path. The mapping must
// stay a bijection on its domain; pathToRoute is derived from it.
var routeToPath = map[Route]string{
	RouteHome:     "/",
	RouteProfile:  "/profile",
	RouteSettings: "/settings",
}

var pathToRoute = func() map[string]Route {
	m := make(map[string]Route, len(routeToPath))
	for r, p := range routeToPath {
		m[p] = r
	}
	return m
}()

// Routes lists every known route.
var Routes = []Route{RouteHome, RouteProfile, RouteSettings}

// Valid reports whether r belongs to the closed route set.
func (r Route) Valid() bool {
	_, ok := routeToPath[r]
	return ok
}

// Path returns the canonical path bound to the route. Unknown routes map
// to the default route's path.
func (r Route) Path() string {
	if p, ok := routeToPath[r]; ok {
		return p
	}
	return routeToPath[DefaultRoute]
}

// RouteFromPath resolves a location path to its route. Trailing slashes
// are normalised first; anything unmapped resolves to the default route.
func RouteFromPath(path string) Route {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	if r, ok := pathToRoute[path]; ok {
		return r
	}
	return DefaultRoute
}
