package domain

import "testing"

func TestRoutePathBijection(t *testing.T) {
	seen := make(map[string]Route)
	for _, r := range Routes {
		path := r.Path()
		if prev, dup := seen[path]; dup {
			t.Fatalf("path %q bound to both %s and %s", path, prev, r)
		}
		seen[path] = r

		if got := RouteFromPath(path); got != r {
			t.Errorf("RouteFromPath(%q) = %s, want %s", path, got, r)
		}
	}
}

func TestRouteFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", RouteHome},
		{"/profile", RouteProfile},
		{"/profile/", RouteProfile},
		{"/settings", RouteSettings},
		{"", RouteHome},
		{"/unknown", RouteHome},
		{"/profile/extra", RouteHome},
	}
	for _, tt := range tests {
		if got := RouteFromPath(tt.path); got != tt.want {
			t.Errorf("RouteFromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestInvalidRouteFallsBackToDefaultPath(t *testing.T) {
	if got := Route("dashboard").Path(); got != DefaultRoute.Path() {
		t.Errorf("unknown route path = %q, want %q", got, DefaultRoute.Path())
	}
	if Route("dashboard").Valid() {
		t.Error("unknown route reported valid")
	}
}
