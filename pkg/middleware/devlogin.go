package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "SP_UID"

// DevLogin assigns every request a user id from the SP_UID cookie, minting a
// default one when absent. Not real authentication; see RequireUser.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: q, Path: "/"})
					uid = q
				} else {
					uid = "dev-default"
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
