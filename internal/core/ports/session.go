package ports

import (
	"context"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
)

// SessionService owns the token + user pair for one running client.
// Consumers observe either fully authenticated or fully unauthenticated
// state, modulo the initial loading window.
type SessionService interface {
	// Initialize loads the persisted token and, when one exists,
	// validates it upstream. It settles the loading flag exactly once
	// regardless of outcome; a rejected or unreachable validation
	// fails closed, clearing the persisted token.
	Initialize(ctx context.Context) error

	// Login authenticates and reports success. It never surfaces an
	// error: on any failure the prior state is left untouched.
	Login(ctx context.Context, email, password string) bool

	// Logout clears the session and the persisted token. Idempotent.
	Logout(ctx context.Context)

	// Refresh re-fetches the user record for the current token,
	// failing closed when the token is no longer accepted.
	Refresh(ctx context.Context) error

	// UpdateLanguage pushes a language preference upstream and, on
	// success, re-fetches the user so the new value is observed. On
	// failure the prior language stays in effect.
	UpdateLanguage(ctx context.Context, lang domain.Language) error

	IsAuthenticated() bool
	Loading() bool
	User() *domain.User
	Token() string
}

// RouteResolver maps the navigation history to the closed route set and
// mutates both in lockstep.
type RouteResolver interface {
	// Current returns the route at the history cursor.
	Current() domain.Route

	// Navigate pushes a new history entry for the route's canonical
	// path and updates the current route synchronously.
	Navigate(route domain.Route)

	// Replace overwrites the current history entry instead of pushing.
	Replace(route domain.Route)

	// Close detaches the resolver from history notifications.
	Close()
}
