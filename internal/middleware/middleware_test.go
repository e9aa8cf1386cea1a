package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"is_admin": c.Get("is_admin"),
	})
}

func newRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	}
	return req
}

func TestCookieSessionMiddleware(t *testing.T) {
	e := echo.New()
	calls := 0
	SetSessionLookup(func(ctx context.Context, token string) (CachedSession, error) {
		calls++
		switch token {
		case "admin-token":
			return CachedSession{UserID: "u-1", Email: "admin@example.com", IsAdmin: true}, nil
		case "user-token":
			return CachedSession{UserID: "u-2", Email: "student@example.com"}, nil
		default:
			return CachedSession{}, errors.New("no rows")
		}
	})

	h := CookieSessionMiddleware()(okHandler)

	t.Run("missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(newRequest(""), rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token clears cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(newRequest("bogus"), rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "session_token=;")
	})

	t.Run("valid token is cached", func(t *testing.T) {
		before := calls

		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(newRequest("admin-token"), rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":"u-1"`)

		rec = httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(newRequest("admin-token"), rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, before+1, calls)

		InvalidateSessionCache("admin-token")
		rec = httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(newRequest("admin-token"), rec)))
		assert.Equal(t, before+2, calls)
	})
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	h := RequireAdmin()(okHandler)

	tests := []struct {
		name     string
		userID   any
		isAdmin  any
		wantCode int
	}{
		{name: "no session", wantCode: http.StatusUnauthorized},
		{name: "student", userID: "u-2", isAdmin: false, wantCode: http.StatusForbidden},
		{name: "admin", userID: "u-1", isAdmin: true, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.userID != nil {
				c.Set("user_id", tt.userID)
				c.Set("is_admin", tt.isAdmin)
			}

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdminOnly_Chain(t *testing.T) {
	e := echo.New()
	SetSessionLookup(func(ctx context.Context, token string) (CachedSession, error) {
		return CachedSession{UserID: "u-2", Email: "student@example.com"}, nil
	})

	var h echo.HandlerFunc = okHandler
	chain := AdminOnly()
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(newRequest("student-token"), rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
