package stubserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// bearerAuth validates the Authorization header, resolves the user it was
// minted for, and injects the record into the request context. Inactive
// accounts are rejected the same way as bad tokens.
func bearerAuth(issuer *tokenIssuer, users *UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := issuer.verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(userID)
			if err != nil || !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
