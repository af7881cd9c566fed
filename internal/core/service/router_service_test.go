package service

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
	"github.com/agrimercato/marketplace-client/internal/infrastructure/history"
)

func TestRouter_InitialRouteFromLocation(t *testing.T) {
	tests := []struct {
		path string
		want domain.Route
	}{
		{"/", domain.RouteHome},
		{"/profile", domain.RouteProfile},
		{"/nope", domain.RouteHome},
	}
	for _, tt := range tests {
		r := NewRouterService(history.New(tt.path), zerolog.Nop())
		if got := r.Current(); got != tt.want {
			t.Errorf("initial route for %q = %s, want %s", tt.path, got, tt.want)
		}
		r.Close()
	}
}

func TestRouter_NavigateRoundTrip(t *testing.T) {
	for _, route := range domain.Routes {
		h := history.New("/")
		r := NewRouterService(h, zerolog.Nop())

		r.Navigate(route)
		if r.Current() != route {
			t.Errorf("Current() = %s after Navigate(%s)", r.Current(), route)
		}
		// The path pushed into history resolves back to the same route.
		if got := domain.RouteFromPath(h.Location()); got != route {
			t.Errorf("resolved %s from history, want %s", got, route)
		}
		r.Close()
	}
}

func TestRouter_BackRestoresPriorRoute(t *testing.T) {
	h := history.New("/")
	r := NewRouterService(h, zerolog.Nop())
	defer r.Close()

	r.Navigate(domain.RouteProfile)
	h.Back()

	if got := r.Current(); got != domain.RouteHome {
		t.Errorf("route after back = %s, want home", got)
	}

	h.Forward()
	if got := r.Current(); got != domain.RouteProfile {
		t.Errorf("route after forward = %s, want profile", got)
	}
}

func TestRouter_ReplaceDoesNotGrowHistory(t *testing.T) {
	h := history.New("/")
	r := NewRouterService(h, zerolog.Nop())
	defer r.Close()

	r.Replace(domain.RouteSettings)
	if r.Current() != domain.RouteSettings {
		t.Errorf("Current() = %s, want settings", r.Current())
	}
	if h.Length() != 1 {
		t.Errorf("history length = %d, want 1", h.Length())
	}

	// Nothing to go back to after a replace.
	h.Back()
	if r.Current() != domain.RouteSettings {
		t.Errorf("route after no-op back = %s", r.Current())
	}
}

func TestRouter_InvalidRouteCollapsesToDefault(t *testing.T) {
	h := history.New("/")
	r := NewRouterService(h, zerolog.Nop())
	defer r.Close()

	r.Navigate(domain.RouteProfile)
	r.Navigate(domain.Route("dashboard"))

	if r.Current() != domain.DefaultRoute {
		t.Errorf("Current() = %s, want default", r.Current())
	}
	if h.Location() != domain.DefaultRoute.Path() {
		t.Errorf("history location = %q, want %q", h.Location(), domain.DefaultRoute.Path())
	}
}

func TestRouter_CloseDetachesFromHistory(t *testing.T) {
	h := history.New("/")
	r := NewRouterService(h, zerolog.Nop())

	r.Navigate(domain.RouteProfile)
	r.Close()
	r.Close() // second close is a no-op

	h.Back()
	if got := r.Current(); got != domain.RouteProfile {
		t.Errorf("closed resolver moved to %s", got)
	}
}
