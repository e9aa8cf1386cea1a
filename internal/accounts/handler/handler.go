package handler

import (
	"errors"
	"net/http"
	"os"
	"time"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/accounts/usecase"
	"lms_backend/internal/middleware"
	"lms_backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	usecase usecase.AccountUsecase
}

func NewAuthHandler(u usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{
		usecase: u,
	}
}

func (h *AuthHandler) Bind(e *echo.Group) {
	e.POST("/login", h.LoginHandler)
	e.POST("/logout", h.LogoutHandler)
}

func (h *AuthHandler) LoginHandler(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	ctx := c.Request().Context()
	output, err := h.usecase.Login(ctx, req, c.Request().UserAgent(), c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		case errors.Is(err, domain.ErrTwoFactorCodeRequired):
			return c.JSON(http.StatusUnauthorized, map[string]any{"error": "Two-factor code required", "twoFactorRequired": true})
		case errors.Is(err, domain.ErrInvalidTwoFactorCode):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid two-factor code"})
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many login attempts, please try again later"})
		default:
			logger.Error("unexpected error in LoginHandler", "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	if output.Session.Token != "" {
		c.SetCookie(&http.Cookie{
			Name:     domain.SessionCookieName,
			Value:    output.Session.Token,
			Expires:  output.Session.ExpiresAt,
			Path:     "/",
			HttpOnly: true,
			Secure:   os.Getenv("APP_ENV") == "production",
			SameSite: http.SameSiteStrictMode,
		})
	}

	return c.JSON(http.StatusOK, output)
}

func (h *AuthHandler) LogoutHandler(c echo.Context) error {
	cookie, err := c.Cookie(domain.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}

	ctx := c.Request().Context()
	result, err := h.usecase.Logout(ctx, cookie.Value)
	if err != nil {
		logger.Error("error during logout", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	middleware.InvalidateSessionCache(cookie.Value)

	c.SetCookie(&http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, result)
}

func validationError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, map[string]any{"error": httpErr.Message})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}
