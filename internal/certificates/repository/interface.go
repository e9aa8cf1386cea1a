package repository

import (
	"context"

	"lms_backend/internal/certificates/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../test/mock_template_repository.go -package=test lms_backend/internal/certificates/repository TemplateRepository

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *domain.Template) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	GetDefaultTemplate(ctx context.Context) (*domain.Template, error)
	ListTemplates(ctx context.Context) ([]*domain.Template, error)
	UpdateTemplate(ctx context.Context, template *domain.Template, promote bool) error
	SetDefaultTemplate(ctx context.Context, id uuid.UUID) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	CreateCertificate(ctx context.Context, certificate *domain.Certificate) error
}
