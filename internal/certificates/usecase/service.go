package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"lms_backend/internal/certificates/domain"
	"lms_backend/internal/certificates/repository"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/mailer"
	"lms_backend/pkg/uploadfiles"

	"github.com/bluele/gcache"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultTemplateKey = "default"

var previewValues = domain.RenderValues{
	StudentName:   "Jane Doe",
	CourseName:    "Introduction to the Platform",
	CertificateID: "PREVIEW",
}

type TemplateService struct {
	repo     repository.TemplateRepository
	uploader *uploadfiles.Uploader
	mailer   mailer.Mailer
	validate *validator.Validate
	cache    gcache.Cache

	// cacheGen changes on every invalidation so that a read that raced with a
	// write does not put the superseded default back into the cache.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func NewTemplateService(r repository.TemplateRepository, uploader *uploadfiles.Uploader, m mailer.Mailer, v *validator.Validate) TemplateUsecase {
	return &TemplateService{
		repo:     r,
		uploader: uploader,
		mailer:   m,
		validate: v,
		cache:    gcache.New(1).LRU().Expiration(domain.DefaultTemplateCacheTTL).Build(),
	}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, input TemplateInput) (TemplateOutput, error) {
	if input.Name == nil {
		return TemplateOutput{}, fmt.Errorf("%w: Name is required", domain.ErrInvalidTemplate)
	}

	template := domain.NewTemplate(strings.TrimSpace(*input.Name))
	input.applyTo(template)
	template.Name = strings.TrimSpace(template.Name)
	if err := s.validateTemplate(template); err != nil {
		return TemplateOutput{}, err
	}

	if input.IsDefault != nil && *input.IsDefault {
		template.IsDefault = true
	} else {
		_, err := s.repo.GetDefaultTemplate(ctx)
		switch {
		case errors.Is(err, domain.ErrNoDefaultTemplate):
			template.IsDefault = true
		case err != nil:
			return TemplateOutput{}, fmt.Errorf("failed to look up default template: %w", err)
		}
	}

	if err := s.repo.CreateTemplate(ctx, template); err != nil {
		return TemplateOutput{}, fmt.Errorf("failed to create template: %w", err)
	}
	s.invalidateDefault()

	logger.Info("certificate template created", "template_id", template.ID, "is_default", template.IsDefault)
	return ToTemplateOutput(template), nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (TemplateOutput, error) {
	template, err := s.loadTemplate(ctx, id)
	if err != nil {
		return TemplateOutput{}, err
	}
	return ToTemplateOutput(template), nil
}

func (s *TemplateService) ListTemplates(ctx context.Context) (TemplateListOutput, error) {
	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return TemplateListOutput{}, fmt.Errorf("failed to list templates: %w", err)
	}

	output := TemplateListOutput{Templates: make([]TemplateOutput, 0, len(templates))}
	for _, t := range templates {
		output.Templates = append(output.Templates, ToTemplateOutput(t))
	}
	return output, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, input TemplateInput) (TemplateOutput, error) {
	template, err := s.loadTemplate(ctx, id)
	if err != nil {
		return TemplateOutput{}, err
	}

	if input.IsDefault != nil && !*input.IsDefault && template.IsDefault {
		return TemplateOutput{}, domain.ErrDefaultTemplateRequired
	}

	previousLogo := template.LogoURL
	input.applyTo(template)
	template.Name = strings.TrimSpace(template.Name)
	if err := s.validateTemplate(template); err != nil {
		return TemplateOutput{}, err
	}

	promote := input.IsDefault != nil && *input.IsDefault && !template.IsDefault
	if err := s.repo.UpdateTemplate(ctx, template, promote); err != nil {
		return TemplateOutput{}, fmt.Errorf("failed to update template: %w", err)
	}
	if promote {
		template.IsDefault = true
	}
	s.invalidateDefault()

	if previousLogo != "" && previousLogo != template.LogoURL {
		s.removeLogo(ctx, previousLogo)
	}

	return ToTemplateOutput(template), nil
}

func (s *TemplateService) SetDefaultTemplate(ctx context.Context, id string) (TemplateOutput, error) {
	template, err := s.loadTemplate(ctx, id)
	if err != nil {
		return TemplateOutput{}, err
	}

	if !template.IsDefault {
		if err := s.repo.SetDefaultTemplate(ctx, template.ID); err != nil {
			return TemplateOutput{}, fmt.Errorf("failed to set default template: %w", err)
		}
		template.IsDefault = true
		s.invalidateDefault()
		logger.Info("default certificate template changed", "template_id", template.ID)
	}

	return ToTemplateOutput(template), nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) (DeleteTemplateOutput, error) {
	template, err := s.loadTemplate(ctx, id)
	if err != nil {
		return DeleteTemplateOutput{}, err
	}

	if template.IsDefault {
		return DeleteTemplateOutput{}, domain.ErrDefaultTemplateDeletion
	}

	if err := s.repo.DeleteTemplate(ctx, template.ID); err != nil {
		if errors.Is(err, domain.ErrDefaultTemplateDeletion) || errors.Is(err, domain.ErrTemplateNotFound) {
			return DeleteTemplateOutput{}, err
		}
		return DeleteTemplateOutput{}, fmt.Errorf("failed to delete template: %w", err)
	}
	s.invalidateDefault()

	if template.LogoURL != "" {
		s.removeLogo(ctx, template.LogoURL)
	}

	logger.Info("certificate template deleted", "template_id", template.ID)
	return DeleteTemplateOutput{Message: "Certificate template deleted"}, nil
}

func (s *TemplateService) GetDefaultTemplate(ctx context.Context) (TemplateOutput, error) {
	template, err := s.defaultTemplate(ctx)
	if err != nil {
		return TemplateOutput{}, err
	}
	return ToTemplateOutput(template), nil
}

func (s *TemplateService) UploadLogo(ctx context.Context, file *multipart.FileHeader) (LogoUploadOutput, error) {
	url, err := s.uploader.UploadImage(ctx, file, domain.LogoFolder)
	if err != nil {
		if errors.Is(err, uploadfiles.ErrFileTooLarge) || errors.Is(err, uploadfiles.ErrUnsupportedType) {
			return LogoUploadOutput{}, fmt.Errorf("%w: %v", domain.ErrInvalidLogo, err)
		}
		return LogoUploadOutput{}, fmt.Errorf("failed to upload logo: %w", err)
	}

	return LogoUploadOutput{LogoURL: url}, nil
}

func (s *TemplateService) PreviewTemplate(ctx context.Context, id string) (RenderedOutput, error) {
	template, err := s.loadTemplate(ctx, id)
	if err != nil {
		return RenderedOutput{}, err
	}

	values := previewValues
	values.CompletionDate = time.Now()
	return ToRenderedOutput(template.Render(values)), nil
}

// IssueCertificate runs when a student completes a course. Without an
// explicit template the current default is applied.
func (s *TemplateService) IssueCertificate(ctx context.Context, req IssueCertificateRequest) (IssueCertificateOutput, error) {
	var (
		template *domain.Template
		err      error
	)
	if req.TemplateID != "" {
		template, err = s.loadTemplate(ctx, req.TemplateID)
	} else {
		template, err = s.defaultTemplate(ctx)
	}
	if err != nil {
		return IssueCertificateOutput{}, err
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	certificate := domain.NewCertificate(template.ID, req.StudentEmail, req.StudentName, req.CourseName, completedAt)
	if certificate.StudentEmail == "" || certificate.StudentName == "" || certificate.CourseName == "" {
		return IssueCertificateOutput{}, domain.ErrInvalidCertificate
	}

	if err := s.repo.CreateCertificate(ctx, certificate); err != nil {
		return IssueCertificateOutput{}, fmt.Errorf("failed to store certificate: %w", err)
	}

	rendered := ToRenderedOutput(template.Render(certificate.RenderValues()))

	s.mailer.SendMailAsync(certificate.StudentEmail, domain.CertificateIssuedEmail, map[string]any{
		"STUDENT_NAME":    certificate.StudentName,
		"COURSE_NAME":     certificate.CourseName,
		"CERTIFICATE_ID":  certificate.ID.String(),
		"COMPLETION_DATE": certificate.CompletedAt.Format(domain.CompletionDateLayout),
		"TITLE":           rendered.Title,
		"BODY":            rendered.Body,
		"FOOTER":          rendered.Footer,
	}, "certificate issued email")

	logger.Info("certificate issued", "certificate_id", certificate.ID, "template_id", template.ID)
	return IssueCertificateOutput{
		CertificateID: certificate.ID.String(),
		Certificate:   rendered,
		Message:       "Certificate issued",
	}, nil
}

func (s *TemplateService) loadTemplate(ctx context.Context, id string) (*domain.Template, error) {
	templateID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidTemplateID
	}

	template, err := s.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) defaultTemplate(ctx context.Context) (*domain.Template, error) {
	if cached, err := s.cache.Get(defaultTemplateKey); err == nil {
		template := *cached.(*domain.Template)
		return &template, nil
	}

	s.cacheMu.Lock()
	gen := s.cacheGen
	s.cacheMu.Unlock()

	template, err := s.repo.GetDefaultTemplate(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoDefaultTemplate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch default template: %w", err)
	}

	cached := *template
	s.cacheMu.Lock()
	if gen == s.cacheGen {
		s.cache.Set(defaultTemplateKey, &cached)
	}
	s.cacheMu.Unlock()
	return template, nil
}

func (s *TemplateService) invalidateDefault() {
	s.cacheMu.Lock()
	s.cacheGen++
	s.cache.Remove(defaultTemplateKey)
	s.cacheMu.Unlock()
}

func (s *TemplateService) removeLogo(ctx context.Context, logoURL string) {
	if err := s.uploader.Delete(ctx, logoURL); err != nil {
		if errors.Is(err, uploadfiles.ErrNotInMediaLibrary) {
			return
		}
		logger.Warn("failed to remove certificate logo", "logo_url", logoURL, "error", err)
	}
}

func (s *TemplateService) validateTemplate(t *domain.Template) error {
	err := s.validate.Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidTemplate, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "rgbhex":
		return fe.Field() + " must be a hex color"
	case "fontfamily":
		return fe.Field() + " must be a supported font family"
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return fe.Field() + " is invalid"
	}
}
