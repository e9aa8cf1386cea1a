package middleware

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/bluele/gcache"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type CachedSession struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// SessionLookup resolves a session token to its live, active owner.
type SessionLookup func(ctx context.Context, token string) (CachedSession, error)

var (
	lookupSession SessionLookup
	sessionCache  = gcache.New(1000).LRU().Expiration(time.Minute * 15).Build()
)

func InitSessionMiddleware(pool *pgxpool.Pool) {
	SetSessionLookup(func(ctx context.Context, token string) (CachedSession, error) {
		query := `
			SELECT u.id, u.email, u.is_admin
			FROM sessions s
			JOIN users u ON u.id = s.user_id
			WHERE s.session_token = $1
			AND s.expires_at > NOW()
			AND u.is_active = true
		`

		var session CachedSession
		err := pool.QueryRow(ctx, query, token).Scan(&session.UserID, &session.Email, &session.IsAdmin)
		return session, err
	})
}

func SetSessionLookup(lookup SessionLookup) {
	lookupSession = lookup
	sessionCache.Purge()
}

func InvalidateSessionCache(sessionToken string) {
	sessionCache.Remove(sessionToken)
}

func CookieSessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie("session_token")
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "missing session token",
				})
			}

			sessionToken := cookie.Value

			if cachedData, err := sessionCache.Get(sessionToken); err == nil {
				setSession(c, sessionToken, cachedData.(CachedSession))
				return next(c)
			}

			session, err := lookupSession(c.Request().Context(), sessionToken)
			if err != nil {
				c.SetCookie(&http.Cookie{
					Name:     "session_token",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					Secure:   os.Getenv("APP_ENV") == "production",
					SameSite: http.SameSiteStrictMode,
					MaxAge:   -1,
				})
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "invalid or expired session",
				})
			}

			_ = sessionCache.Set(sessionToken, session)
			setSession(c, sessionToken, session)

			return next(c)
		}
	}
}

func setSession(c echo.Context, token string, session CachedSession) {
	c.Set("session_token", token)
	c.Set("user_id", session.UserID)
	c.Set("email", session.Email)
	c.Set("is_admin", session.IsAdmin)
}
