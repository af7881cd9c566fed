package ports

import (
	"context"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
)

// LoginResult is the payload returned by the upstream on a successful
// login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	User        *domain.User
}

// AuthGateway is the client side of the marketplace auth API. The server
// is an external collaborator; implementations translate transport and
// HTTP failures into domain errors and never interpret the token beyond
// carrying it as an opaque bearer string.
type AuthGateway interface {
	// Login exchanges credentials for a token and user record.
	// Any non-2xx response maps to domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// CurrentUser validates the token against GET /auth/me.
	// Any non-2xx response maps to domain.ErrTokenInvalid.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)

	// UpdateLanguage persists the language preference server-side.
	UpdateLanguage(ctx context.Context, token string, lang domain.Language) error
}
