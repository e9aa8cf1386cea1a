package handler

import (
	"errors"
	"net/http"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/accounts/usecase"
	"lms_backend/internal/middleware"
	"lms_backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	usecase usecase.AccountUsecase
}

func NewUserHandler(u usecase.AccountUsecase) *UserHandler {
	return &UserHandler{
		usecase: u,
	}
}

func (h *UserHandler) Bind(e *echo.Group) {
	session := middleware.CookieSessionMiddleware()
	e.GET("/me", h.GetProfile, session)
	e.PUT("/me/password", h.ChangePassword, session)
	e.POST("/me/two-factor/setup", h.SetupTwoFactor, session)
	e.POST("/me/two-factor/enable", h.EnableTwoFactor, session)
	e.POST("/me/two-factor/disable", h.DisableTwoFactor, session)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	output, err := h.usecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req usecase.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.usecase.ChangePassword(c.Request().Context(), userID, req)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}

func (h *UserHandler) SetupTwoFactor(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	output, err := h.usecase.SetupTwoFactor(c.Request().Context(), userID)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}

func (h *UserHandler) EnableTwoFactor(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req usecase.EnableTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.usecase.EnableTwoFactor(c.Request().Context(), userID, req)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}

func (h *UserHandler) DisableTwoFactor(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req usecase.DisableTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.usecase.DisableTwoFactor(c.Request().Context(), userID, req)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}

func accountError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrAccountNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Account not found"})
	case errors.Is(err, domain.ErrInvalidTwoFactorCode):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid two-factor code"})
	case errors.Is(err, domain.ErrInvalidCurrentPassword):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrTwoFactorAlreadyEnabled), errors.Is(err, domain.ErrTwoFactorNotEnabled):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		logger.Error("unexpected account error", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
