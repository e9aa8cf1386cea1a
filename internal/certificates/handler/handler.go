package handler

import (
	"errors"
	"net/http"

	"lms_backend/internal/certificates/domain"
	"lms_backend/internal/certificates/usecase"
	"lms_backend/internal/middleware"
	"lms_backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type TemplateHandler struct {
	usecase usecase.TemplateUsecase
}

func NewTemplateHandler(u usecase.TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{
		usecase: u,
	}
}

// Bind mounts the admin routes on a /lms group.
func (h *TemplateHandler) Bind(e *echo.Group) {
	templates := e.Group("/certificate-templates", middleware.AdminOnly()...)
	templates.GET("", h.ListTemplates)
	templates.POST("", h.CreateTemplate)
	templates.GET("/default", h.GetDefaultTemplate)
	templates.POST("/logo", h.UploadLogo)
	templates.GET("/:id", h.GetTemplate)
	templates.PUT("/:id", h.UpdateTemplate)
	templates.DELETE("/:id", h.DeleteTemplate)
	templates.POST("/:id/default", h.SetDefaultTemplate)
	templates.GET("/:id/preview", h.PreviewTemplate)

	e.POST("/certificates", h.IssueCertificate, middleware.AdminOnly()...)
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	output, err := h.usecase.ListTemplates(c.Request().Context())
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	var req usecase.TemplateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	output, err := h.usecase.CreateTemplate(c.Request().Context(), req)
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusCreated, output)
}

func (h *TemplateHandler) GetDefaultTemplate(c echo.Context) error {
	output, err := h.usecase.GetDefaultTemplate(c.Request().Context())
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) UploadLogo(c echo.Context) error {
	file, err := c.FormFile("logo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A logo file is required"})
	}

	output, err := h.usecase.UploadLogo(c.Request().Context(), file)
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusCreated, output)
}

func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	output, err := h.usecase.GetTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	var req usecase.TemplateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	output, err := h.usecase.UpdateTemplate(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	output, err := h.usecase.DeleteTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) SetDefaultTemplate(c echo.Context) error {
	output, err := h.usecase.SetDefaultTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) PreviewTemplate(c echo.Context) error {
	output, err := h.usecase.PreviewTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *TemplateHandler) IssueCertificate(c echo.Context) error {
	var req usecase.IssueCertificateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return c.JSON(httpErr.Code, map[string]any{"error": httpErr.Message})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	output, err := h.usecase.IssueCertificate(c.Request().Context(), req)
	if err != nil {
		return templateError(c, err)
	}
	return c.JSON(http.StatusCreated, output)
}

func templateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTemplate),
		errors.Is(err, domain.ErrInvalidTemplateID),
		errors.Is(err, domain.ErrInvalidCertificate),
		errors.Is(err, domain.ErrInvalidLogo):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrTemplateNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Certificate template not found"})
	case errors.Is(err, domain.ErrDefaultTemplateDeletion), errors.Is(err, domain.ErrDefaultTemplateRequired):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNoDefaultTemplate):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		logger.Error("unexpected certificate template error", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
