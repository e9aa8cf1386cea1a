package test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms_backend/internal/certificates/domain"
	"lms_backend/internal/certificates/handler"
	"lms_backend/internal/certificates/usecase"
	"lms_backend/internal/middleware"
	"lms_backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminToken = "admin-token"

func newServer(t *testing.T, u usecase.TemplateUsecase) *echo.Echo {
	t.Helper()

	middleware.SetSessionLookup(func(_ context.Context, token string) (middleware.CachedSession, error) {
		switch token {
		case adminToken:
			return middleware.CachedSession{UserID: uuid.NewString(), Email: "admin@example.com", IsAdmin: true}, nil
		case "student-token":
			return middleware.CachedSession{UserID: uuid.NewString(), Email: "student@example.com"}, nil
		}
		return middleware.CachedSession{}, errors.New("session not found")
	})

	e := echo.New()
	e.Validator = validator.NewEchoValidator(validator.New())
	handler.NewTemplateHandler(u).Bind(e.Group("/lms"))
	return e
}

func do(e *echo.Echo, method, target, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTemplateRoutes_RequireAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	e := newServer(t, NewMockTemplateUsecase(ctrl))

	rec := do(e, http.MethodGet, "/lms/certificate-templates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/lms/certificate-templates", "student-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTemplateRoutes_StatusMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsecase := NewMockTemplateUsecase(ctrl)
	e := newServer(t, mockUsecase)
	id := uuid.NewString()

	t.Run("create", func(t *testing.T) {
		mockUsecase.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.TemplateInput) (usecase.TemplateOutput, error) {
				require.NotNil(t, in.Name)
				return usecase.TemplateOutput{ID: id, Name: *in.Name, IsDefault: true}, nil
			})

		rec := do(e, http.MethodPost, "/lms/certificate-templates", adminToken, map[string]any{"name": "Classic"})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"isDefault":true`)
	})

	t.Run("validation", func(t *testing.T) {
		mockUsecase.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).
			Return(usecase.TemplateOutput{}, domain.ErrInvalidTemplate)

		rec := do(e, http.MethodPost, "/lms/certificate-templates", adminToken, map[string]any{"name": "C"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("default routed before id", func(t *testing.T) {
		mockUsecase.EXPECT().GetDefaultTemplate(gomock.Any()).Return(usecase.TemplateOutput{}, domain.ErrNoDefaultTemplate)

		rec := do(e, http.MethodGet, "/lms/certificate-templates/default", adminToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsecase.EXPECT().GetTemplate(gomock.Any(), id).Return(usecase.TemplateOutput{}, domain.ErrTemplateNotFound)

		rec := do(e, http.MethodGet, "/lms/certificate-templates/"+id, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete default conflicts", func(t *testing.T) {
		mockUsecase.EXPECT().DeleteTemplate(gomock.Any(), id).Return(usecase.DeleteTemplateOutput{}, domain.ErrDefaultTemplateDeletion)

		rec := do(e, http.MethodDelete, "/lms/certificate-templates/"+id, adminToken, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "cannot be deleted")
	})

	t.Run("set default", func(t *testing.T) {
		mockUsecase.EXPECT().SetDefaultTemplate(gomock.Any(), id).Return(usecase.TemplateOutput{ID: id, IsDefault: true}, nil)

		rec := do(e, http.MethodPost, "/lms/certificate-templates/"+id+"/default", adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unexpected error is generic", func(t *testing.T) {
		mockUsecase.EXPECT().PreviewTemplate(gomock.Any(), id).Return(usecase.RenderedOutput{}, assert.AnError)

		rec := do(e, http.MethodGet, "/lms/certificate-templates/"+id+"/preview", adminToken, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestIssueCertificateRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsecase := NewMockTemplateUsecase(ctrl)
	e := newServer(t, mockUsecase)

	t.Run("invalid body rejected before usecase", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/lms/certificates", adminToken, map[string]string{"studentEmail": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("issued", func(t *testing.T) {
		mockUsecase.EXPECT().IssueCertificate(gomock.Any(), gomock.Any()).
			Return(usecase.IssueCertificateOutput{CertificateID: "c1", Message: "Certificate issued"}, nil)

		rec := do(e, http.MethodPost, "/lms/certificates", adminToken, map[string]string{
			"studentEmail": "student@example.com",
			"studentName":  "Ada",
			"courseName":   "Go",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
