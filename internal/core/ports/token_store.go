package ports

import "context"

// TokenStore is the durable single-slot storage for the bearer token.
// Absence of a token means logged out; implementations must never expose
// a partially written value.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)

	// Save persists the token atomically, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted token. Clearing an empty slot is a
	// no-op.
	Clear(ctx context.Context) error
}
