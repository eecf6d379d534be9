package middleware

import (
	"net/http"
	"strings"

	"github.com/Eursukkul/meetapp-service/internal/auth"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// token's user id in the echo context.
func Auth(tokens *auth.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token not provided")
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token malformatted")
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token invalid")
			}

			SetUserID(c, claims.UserID)
			return next(c)
		}
	}
}

func SetUserID(c echo.Context, id uint) {
	c.Set(userIDKey, id)
}

// UserID returns the authenticated user, zero when the request was not
// authenticated.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}
