package handler

import (
	"net/http"

	"lms_backend/internal/accounts/usecase"
	"lms_backend/internal/middleware"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	usecase usecase.AdminUsecase
}

func NewAdminHandler(u usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		usecase: u,
	}
}

func (h *AdminHandler) Bind(e *echo.Group) {
	e.POST("/accounts/two-factor/disable", h.DisableTwoFactor, middleware.AdminOnly()...)
}

func (h *AdminHandler) DisableTwoFactor(c echo.Context) error {
	var req usecase.AdminDisableTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.usecase.DisableTwoFactor(c.Request().Context(), req.Email)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, output)
}
