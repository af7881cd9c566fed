package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Config controls token minting for the stub upstream.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds the Echo instance serving the auth wire contract over
// the given user table.
func NewRouter(users *UserStore, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// --- Dependencies ---
	issuer := newTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	h := &handlers{users: users, issuer: issuer, log: log}
	auth := bearerAuth(issuer, users)

	// --- Auth routes (same /api/v1 prefix as the production backend) ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", h.Login)
	v1.POST("/auth/register", h.Register)
	v1.GET("/auth/me", h.Me, auth)
	v1.POST("/auth/refresh", h.Refresh, auth)
	v1.PUT("/auth/language", h.UpdateLanguage, auth)

	// --- Operational endpoints ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
