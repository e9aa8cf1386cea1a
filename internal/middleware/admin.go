package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin must run after CookieSessionMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(string)
			if !ok || userID == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "unauthorized",
				})
			}

			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "admin access required",
				})
			}

			return next(c)
		}
	}
}

// AdminOnly chains session resolution and the admin check.
func AdminOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{CookieSessionMiddleware(), RequireAdmin()}
}
