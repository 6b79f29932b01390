package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser is an optional middleware. When enabled=true it only accepts
// requests carrying a user id in the X-User-Id header or the SP_UID cookie
// and returns 401 otherwise. When enabled=false it passes through (use
// DevLogin instead).
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
