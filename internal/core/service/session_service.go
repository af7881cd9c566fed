package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
	"github.com/agrimercato/marketplace-client/internal/core/ports"
	"github.com/agrimercato/marketplace-client/internal/metrics"
)

type sessionService struct {
	gateway ports.AuthGateway
	store   ports.TokenStore
	log     zerolog.Logger

	mu      sync.RWMutex
	token   string
	user    *domain.User
	loading bool
}

// NewSessionService returns a SessionService backed by the given gateway
// and token store. The session starts in the loading state; call
// Initialize once to settle it.
func NewSessionService(gateway ports.AuthGateway, store ports.TokenStore, log zerolog.Logger) ports.SessionService {
	return &sessionService{
		gateway: gateway,
		store:   store,
		log:     log,
		loading: true,
	}
}

// Initialize restores the persisted session, if any. The loading flag is
// settled exactly once regardless of outcome. A token the upstream
// rejects — or that cannot be validated at all — fails closed: both the
// in-memory and the persisted token are cleared. A rejected token is not
// an error to the caller; only storage faults are reported.
func (s *sessionService) Initialize(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		s.settle("", nil)
		return fmt.Errorf("session initialize: load token: %w", err)
	}
	if token == "" {
		s.log.Debug().Msg("no persisted token, starting unauthenticated")
		s.settle("", nil)
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.loading = true
	s.mu.Unlock()

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear rejected token")
		}
		s.settle("", nil)
		s.log.Info().Err(err).Msg("persisted token rejected, session cleared")
		return nil
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	s.settle(token, user)
	s.log.Info().Int("user_id", user.ID).Str("role", string(user.RoleName)).Msg("session restored")
	return nil
}

// Login never surfaces an error: any failure — transport, rejection, or a
// malformed response — reports false and leaves the prior state
// untouched. No partial token/user pair is ever installed.
func (s *sessionService) Login(ctx context.Context, email, password string) bool {
	res, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "rejected"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		s.log.Debug().Err(err).Str("email", email).Msg("login failed")
		return false
	}
	if res == nil || res.AccessToken == "" || res.User == nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Str("email", email).Msg("login response missing token or user")
		return false
	}

	if err := s.store.Save(ctx, res.AccessToken); err != nil {
		// The session is valid for this process; it just won't survive
		// a restart.
		s.log.Warn().Err(err).Msg("failed to persist token")
	}

	s.mu.Lock()
	s.token = res.AccessToken
	s.user = res.User
	s.loading = false
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int("user_id", res.User.ID).Str("role", string(res.User.RoleName)).Msg("login succeeded")
	return true
}

// Logout clears the in-memory session and the persisted token. Calling it
// while logged out is a no-op.
func (s *sessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token")
	}

	s.mu.Lock()
	wasAuthenticated := s.token != ""
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if wasAuthenticated {
		s.log.Info().Msg("logged out")
	}
}

// Refresh replaces the user record wholesale by re-validating the current
// token. A rejection fails closed, clearing the session.
func (s *sessionService) Refresh(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear rejected token")
		}
		s.mu.Lock()
		s.token = ""
		s.user = nil
		s.mu.Unlock()
		return fmt.Errorf("session refresh: %w", err)
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// UpdateLanguage pushes a language preference upstream and re-fetches the
// user so the new value is observed. On upstream failure the prior
// language stays in effect with no partial application.
func (s *sessionService) UpdateLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrInvalidLanguage
	}
	token := s.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	if err := s.gateway.UpdateLanguage(ctx, token, lang); err != nil {
		metrics.LanguageUpdatesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("update language: %w", err)
	}
	metrics.LanguageUpdatesTotal.WithLabelValues("success").Inc()

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		// The preference was stored upstream; the stale record is
		// replaced on the next refresh.
		s.log.Warn().Err(err).Msg("language updated but user re-fetch failed")
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// IsAuthenticated holds iff both the token and the confirmed user are
// present. The transient initialize window (token set, user pending)
// reports false.
func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

func (s *sessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// User returns a copy of the current user record, or nil when
// unauthenticated. Callers cannot mutate session state through it.
func (s *sessionService) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// settle installs the final token/user pair and drops the loading flag.
func (s *sessionService) settle(token string, user *domain.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.loading = false
	s.mu.Unlock()
}
