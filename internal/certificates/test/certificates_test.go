package test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"lms_backend/internal/certificates/domain"
	"lms_backend/internal/certificates/usecase"
	"lms_backend/pkg/storage"
	"lms_backend/pkg/uploadfiles"
	"lms_backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const mediaURL = "https://media.example.com"

type sentMail struct {
	to   string
	id   string
	data map[string]any
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) SendMail(to string, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, id: id, data: data})
	return nil
}

func (m *recordingMailer) SendMailAsync(to string, id string, data map[string]any, operationName string) {
	_ = m.SendMail(to, id, data)
}

type fixture struct {
	repo   *MockTemplateRepository
	store  *storage.MemoryStorage
	mailer *recordingMailer
	svc    usecase.TemplateUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:   NewMockTemplateRepository(ctrl),
		store:  storage.NewMemoryStorage(storage.MemoryConfig{PublicURL: mediaURL}),
		mailer: &recordingMailer{},
	}
	f.svc = usecase.NewTemplateService(f.repo, uploadfiles.NewUploader(f.store), f.mailer, validator.New())
	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("first template becomes default", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(nil, domain.ErrNoDefaultTemplate)
		f.repo.EXPECT().CreateTemplate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tpl *domain.Template) error {
			assert.True(t, tpl.IsDefault)
			return nil
		})

		out, err := f.svc.CreateTemplate(ctx, usecase.TemplateInput{Name: ptr("Classic")})
		require.NoError(t, err)
		assert.True(t, out.IsDefault)
		assert.Equal(t, "Certificate of Completion", out.TitleText)
		assert.Equal(t, 48, out.TitleFontSize)
	})

	t.Run("later template is not default", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(domain.NewTemplate("Existing"), nil)
		f.repo.EXPECT().CreateTemplate(ctx, gomock.Any()).Return(nil)

		out, err := f.svc.CreateTemplate(ctx, usecase.TemplateInput{
			Name:          ptr("Modern"),
			PrimaryColor:  ptr("#000"),
			TitleFontSize: ptr(60),
		})
		require.NoError(t, err)
		assert.False(t, out.IsDefault)
		assert.Equal(t, "#000", out.PrimaryColor)
		assert.Equal(t, 60, out.TitleFontSize)
	})

	t.Run("explicit default skips lookup", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().CreateTemplate(ctx, gomock.Any()).Return(nil)

		out, err := f.svc.CreateTemplate(ctx, usecase.TemplateInput{Name: ptr("Gold"), IsDefault: ptr(true)})
		require.NoError(t, err)
		assert.True(t, out.IsDefault)
	})

	invalid := []struct {
		name  string
		input usecase.TemplateInput
		field string
	}{
		{"missing name", usecase.TemplateInput{}, "Name"},
		{"short name", usecase.TemplateInput{Name: ptr("A")}, "Name"},
		{"bad color", usecase.TemplateInput{Name: ptr("Classic"), BorderColor: ptr("gold")}, "BorderColor"},
		{"short alpha color", usecase.TemplateInput{Name: ptr("Classic"), TextColor: ptr("#abcd")}, "TextColor"},
		{"long alpha color", usecase.TemplateInput{Name: ptr("Classic"), PrimaryColor: ptr("#aabbccdd")}, "PrimaryColor"},
		{"unsupported font", usecase.TemplateInput{Name: ptr("Classic"), BodyFontFamily: ptr("Comic Sans MS")}, "BodyFontFamily"},
		{"title size too small", usecase.TemplateInput{Name: ptr("Classic"), TitleFontSize: ptr(23)}, "TitleFontSize"},
		{"footer size too big", usecase.TemplateInput{Name: ptr("Classic"), FooterFontSize: ptr(19)}, "FooterFontSize"},
		{"empty title", usecase.TemplateInput{Name: ptr("Classic"), TitleText: ptr("")}, "TitleText"},
		{"bad logo url", usecase.TemplateInput{Name: ptr("Classic"), LogoURL: ptr("not a url")}, "LogoURL"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.CreateTemplate(ctx, tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidTemplate)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(nil, domain.ErrNoDefaultTemplate)
		f.repo.EXPECT().CreateTemplate(ctx, gomock.Any()).Return(errors.New("connection reset"))

		_, err := f.svc.CreateTemplate(ctx, usecase.TemplateInput{Name: ptr("Classic")})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidTemplate)
	})
}

func TestDeleteTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("default template is rejected", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		tpl.IsDefault = true
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)

		_, err := f.svc.DeleteTemplate(ctx, tpl.ID.String())
		assert.ErrorIs(t, err, domain.ErrDefaultTemplateDeletion)
	})

	t.Run("race with set-default is rejected by the store", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().DeleteTemplate(ctx, tpl.ID).Return(domain.ErrDefaultTemplateDeletion)

		_, err := f.svc.DeleteTemplate(ctx, tpl.ID.String())
		assert.ErrorIs(t, err, domain.ErrDefaultTemplateDeletion)
	})

	t.Run("removes logo from media library", func(t *testing.T) {
		f := newFixture(t)
		logoURL, err := f.store.Upload(ctx, "certificate-logos/logo.png", bytes.NewReader([]byte("png")), "image/png")
		require.NoError(t, err)

		tpl := domain.NewTemplate("Classic")
		tpl.LogoURL = logoURL
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().DeleteTemplate(ctx, tpl.ID).Return(nil)

		out, err := f.svc.DeleteTemplate(ctx, tpl.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Certificate template deleted", out.Message)
		_, ok := f.store.Get("certificate-logos/logo.png")
		assert.False(t, ok)
	})

	t.Run("external logo left alone", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		tpl.LogoURL = "https://elsewhere.example.com/logo.png"
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().DeleteTemplate(ctx, tpl.ID).Return(nil)

		_, err := f.svc.DeleteTemplate(ctx, tpl.ID.String())
		assert.NoError(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.DeleteTemplate(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidTemplateID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().GetTemplateByID(ctx, id).Return(nil, domain.ErrTemplateNotFound)

		_, err := f.svc.DeleteTemplate(ctx, id.String())
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}

func TestUpdateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().UpdateTemplate(ctx, tpl, false).Return(nil)

		out, err := f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{ShowBorder: ptr(false)})
		require.NoError(t, err)
		assert.False(t, out.ShowBorder)
		assert.Equal(t, "Classic", out.Name)
		assert.Equal(t, domain.DefaultPrimaryColor, out.PrimaryColor)
	})

	t.Run("cannot unset the default", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		tpl.IsDefault = true
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)

		_, err := f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{IsDefault: ptr(false)})
		assert.ErrorIs(t, err, domain.ErrDefaultTemplateRequired)
	})

	t.Run("promoting to default", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Modern")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().UpdateTemplate(ctx, tpl, true).Return(nil)

		out, err := f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{
			IsDefault: ptr(true),
			TitleText: ptr("Award of Excellence"),
		})
		require.NoError(t, err)
		assert.True(t, out.IsDefault)
		assert.Equal(t, "Award of Excellence", out.TitleText)
	})

	t.Run("failed promotion reports the template unchanged", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Modern")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().UpdateTemplate(ctx, tpl, true).Return(errors.New("serialization failure"))

		_, err := f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{
			IsDefault: ptr(true),
			TitleText: ptr("Award of Excellence"),
		})
		require.Error(t, err)
		assert.False(t, tpl.IsDefault)
	})

	t.Run("replacing logo deletes the old one", func(t *testing.T) {
		f := newFixture(t)
		oldURL, err := f.store.Upload(ctx, "certificate-logos/old.png", bytes.NewReader([]byte("old")), "image/png")
		require.NoError(t, err)

		tpl := domain.NewTemplate("Classic")
		tpl.LogoURL = oldURL
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().UpdateTemplate(ctx, tpl, false).Return(nil)

		_, err = f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{LogoURL: ptr(mediaURL + "/certificate-logos/new.png")})
		require.NoError(t, err)
		_, ok := f.store.Get("certificate-logos/old.png")
		assert.False(t, ok)
	})

	t.Run("invalid size rejected before write", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)

		_, err := f.svc.UpdateTemplate(ctx, tpl.ID.String(), usecase.TemplateInput{NameFontSize: ptr(61)})
		assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
	})
}

func TestSetDefaultTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the default and invalidates cache", func(t *testing.T) {
		f := newFixture(t)
		current := domain.NewTemplate("Classic")
		current.IsDefault = true
		next := domain.NewTemplate("Modern")

		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(current, nil).Times(1)
		first, err := f.svc.GetDefaultTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, current.ID.String(), first.ID)

		f.repo.EXPECT().GetTemplateByID(ctx, next.ID).Return(next, nil)
		f.repo.EXPECT().SetDefaultTemplate(ctx, next.ID).Return(nil)
		out, err := f.svc.SetDefaultTemplate(ctx, next.ID.String())
		require.NoError(t, err)
		assert.True(t, out.IsDefault)

		promoted := *next
		promoted.IsDefault = true
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(&promoted, nil).Times(1)
		second, err := f.svc.GetDefaultTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, next.ID.String(), second.ID)
	})

	t.Run("already default is a no-op", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		tpl.IsDefault = true
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)

		out, err := f.svc.SetDefaultTemplate(ctx, tpl.ID.String())
		require.NoError(t, err)
		assert.True(t, out.IsDefault)
	})
}

func TestGetDefaultTemplate_Cached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tpl := domain.NewTemplate("Classic")
	tpl.IsDefault = true
	f.repo.EXPECT().GetDefaultTemplate(ctx).Return(tpl, nil).Times(1)

	for range 3 {
		out, err := f.svc.GetDefaultTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, tpl.ID.String(), out.ID)
	}
}

func TestGetDefaultTemplate_WriteDuringReadNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	current := domain.NewTemplate("Classic")
	current.IsDefault = true
	next := domain.NewTemplate("Modern")
	promoted := *next
	promoted.IsDefault = true

	gomock.InOrder(
		f.repo.EXPECT().GetDefaultTemplate(ctx).DoAndReturn(func(context.Context) (*domain.Template, error) {
			// The default moves while the old row is in flight.
			_, err := f.svc.SetDefaultTemplate(ctx, next.ID.String())
			require.NoError(t, err)
			return current, nil
		}),
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(&promoted, nil),
	)
	f.repo.EXPECT().GetTemplateByID(ctx, next.ID).Return(next, nil)
	f.repo.EXPECT().SetDefaultTemplate(ctx, next.ID).Return(nil)

	first, err := f.svc.GetDefaultTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, current.ID.String(), first.ID)

	second, err := f.svc.GetDefaultTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.ID.String(), second.ID)
}

func TestListTemplates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	def := domain.NewTemplate("Zeta")
	def.IsDefault = true
	f.repo.EXPECT().ListTemplates(ctx).Return([]*domain.Template{def, domain.NewTemplate("Alpha")}, nil)

	out, err := f.svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, out.Templates, 2)
	assert.True(t, out.Templates[0].IsDefault)
	assert.Equal(t, "Alpha", out.Templates[1].Name)
}

func TestPreviewTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tpl := domain.NewTemplate("Classic")
	f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)

	out, err := f.svc.PreviewTemplate(ctx, tpl.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.StudentName)
	assert.Equal(t, "has successfully completed Introduction to the Platform", out.Body)
	assert.NotContains(t, out.Footer, "{{")
}

func TestIssueCertificate(t *testing.T) {
	ctx := context.Background()
	req := usecase.IssueCertificateRequest{
		StudentEmail: "student@example.com",
		StudentName:  "Ada Lovelace",
		CourseName:   "Go Fundamentals",
	}

	t.Run("uses default template and emails the student", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		tpl.IsDefault = true
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(tpl, nil)

		var stored *domain.Certificate
		f.repo.EXPECT().CreateCertificate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Certificate) error {
			stored = c
			return nil
		})

		out, err := f.svc.IssueCertificate(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID.String(), out.CertificateID)
		assert.Equal(t, tpl.ID, *stored.TemplateID)
		assert.Equal(t, "has successfully completed Go Fundamentals", out.Certificate.Body)

		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "student@example.com", f.mailer.sent[0].to)
		assert.Equal(t, domain.CertificateIssuedEmail, f.mailer.sent[0].id)
		assert.Equal(t, out.CertificateID, f.mailer.sent[0].data["CERTIFICATE_ID"])
	})

	t.Run("explicit template", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Modern")
		f.repo.EXPECT().GetTemplateByID(ctx, tpl.ID).Return(tpl, nil)
		f.repo.EXPECT().CreateCertificate(ctx, gomock.Any()).Return(nil)

		withTemplate := req
		withTemplate.TemplateID = tpl.ID.String()
		out, err := f.svc.IssueCertificate(ctx, withTemplate)
		require.NoError(t, err)
		assert.Equal(t, tpl.ID.String(), out.Certificate.TemplateID)
	})

	t.Run("no default configured", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(nil, domain.ErrNoDefaultTemplate)

		_, err := f.svc.IssueCertificate(ctx, req)
		assert.ErrorIs(t, err, domain.ErrNoDefaultTemplate)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("store failure sends nothing", func(t *testing.T) {
		f := newFixture(t)
		tpl := domain.NewTemplate("Classic")
		f.repo.EXPECT().GetDefaultTemplate(ctx).Return(tpl, nil)
		f.repo.EXPECT().CreateCertificate(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := f.svc.IssueCertificate(ctx, req)
		require.Error(t, err)
		assert.Empty(t, f.mailer.sent)
	})
}

func TestUploadLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("stored under logo folder", func(t *testing.T) {
		f := newFixture(t)
		header := multipartFile(t, "logo.png", []byte("\x89PNG"))

		out, err := f.svc.UploadLogo(ctx, header)
		require.NoError(t, err)
		assert.Contains(t, out.LogoURL, mediaURL+"/certificate-logos/")

		key, ok := f.store.ObjectKey(out.LogoURL)
		require.True(t, ok)
		obj, ok := f.store.Get(key)
		require.True(t, ok)
		assert.Equal(t, "image/png", obj.ContentType)
	})

	t.Run("unsupported type", func(t *testing.T) {
		f := newFixture(t)
		header := multipartFile(t, "logo.gif", []byte("GIF89a"))

		_, err := f.svc.UploadLogo(ctx, header)
		assert.ErrorIs(t, err, domain.ErrInvalidLogo)
	})
}

func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("logo", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/lms/certificate-templates/logo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["logo"][0]
}
