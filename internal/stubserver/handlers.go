package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
)

type handlers struct {
	users  *UserStore
	issuer *tokenIssuer
	log    zerolog.Logger
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	RoleName  string `json:"role_name" validate:"required,oneof=admin farmer consumer restaurant_owner workshop_host event_organizer"`
}

type languageRequest struct {
	Language string `json:"language" validate:"required,oneof=it en"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        *domain.User `json:"user"`
}

// Login implements POST /auth/login.
func (h *handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect email or password"})
	}

	return h.issueToken(c, user)
}

// Register implements POST /auth/register.
func (h *handlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	user, err := h.users.Create(domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
		RoleName:  domain.Role(req.RoleName),
	}, req.Password)
	if err == ErrUserExists {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email already registered"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusCreated, user)
}

// Me implements GET /auth/me.
func (h *handlers) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

// Refresh implements POST /auth/refresh, minting a fresh token for the
// already-authenticated caller.
func (h *handlers) Refresh(c echo.Context) error {
	return h.issueToken(c, currentUser(c))
}

// UpdateLanguage implements PUT /auth/language.
func (h *handlers) UpdateLanguage(c echo.Context) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	user := currentUser(c)
	if err := h.users.SetLanguage(user.ID, domain.Language(req.Language)); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.log.Debug().Int("user_id", user.ID).Str("language", req.Language).Msg("language updated")
	return c.JSON(http.StatusOK, map[string]string{"message": "language updated"})
}

func (h *handlers) issueToken(c echo.Context, user *domain.User) error {
	token, err := h.issuer.mint(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("token mint failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   h.issuer.expirySeconds(),
		User:        user,
	})
}

// currentUser returns the user injected by the bearer middleware. Routes
// behind the middleware always have one.
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
