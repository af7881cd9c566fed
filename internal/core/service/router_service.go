package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
	"github.com/agrimercato/marketplace-client/internal/core/ports"
	"github.com/agrimercato/marketplace-client/internal/metrics"
)

type routerService struct {
	history ports.History
	log     zerolog.Logger

	mu      sync.RWMutex
	current domain.Route
	subID   int
	closed  bool
}

// NewRouterService builds a RouteResolver over the given history. The
// initial route is derived from the history's current location, and the
// resolver subscribes to back/forward moves so externally triggered
// navigation is re-resolved through the same mapping. Call Close to
// detach the subscription.
func NewRouterService(history ports.History, log zerolog.Logger) ports.RouteResolver {
	r := &routerService{
		history: history,
		log:     log,
		current: domain.RouteFromPath(history.Location()),
	}
	r.subID = history.Subscribe(r.onHistoryMove)
	return r
}

func (r *routerService) Current() domain.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate pushes a history entry for the route's canonical path and
// updates the current route synchronously, so back-navigation returns to
// the prior route. Routes outside the closed set collapse to the default.
func (r *routerService) Navigate(route domain.Route) {
	route = normalize(route)
	r.history.Push(route.Path())

	r.mu.Lock()
	r.current = route
	r.mu.Unlock()

	metrics.RouteTransitionsTotal.WithLabelValues("navigate", string(route)).Inc()
	r.log.Debug().Str("route", string(route)).Str("path", route.Path()).Msg("navigated")
}

// Replace overwrites the current history entry instead of pushing, for
// routes not worth a back-navigation stop.
func (r *routerService) Replace(route domain.Route) {
	route = normalize(route)
	r.history.Replace(route.Path())

	r.mu.Lock()
	r.current = route
	r.mu.Unlock()

	metrics.RouteTransitionsTotal.WithLabelValues("replace", string(route)).Inc()
	r.log.Debug().Str("route", string(route)).Str("path", route.Path()).Msg("replaced")
}

// Close detaches the resolver from history notifications. Safe to call
// more than once.
func (r *routerService) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.history.Unsubscribe(r.subID)
}

// onHistoryMove re-derives the current route after an external
// back/forward move.
func (r *routerService) onHistoryMove(path string) {
	route := domain.RouteFromPath(path)

	r.mu.Lock()
	r.current = route
	r.mu.Unlock()

	metrics.RouteTransitionsTotal.WithLabelValues("history", string(route)).Inc()
	r.log.Debug().Str("route", string(route)).Str("path", path).Msg("history move")
}

func normalize(route domain.Route) domain.Route {
	if !route.Valid() {
		return domain.DefaultRoute
	}
	return route
}
