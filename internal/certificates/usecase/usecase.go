package usecase

import (
	"context"
	"mime/multipart"
)

//go:generate mockgen -destination=../test/mock_template_usecase.go -package=test lms_backend/internal/certificates/usecase TemplateUsecase

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, input TemplateInput) (TemplateOutput, error)
	GetTemplate(ctx context.Context, id string) (TemplateOutput, error)
	ListTemplates(ctx context.Context) (TemplateListOutput, error)
	UpdateTemplate(ctx context.Context, id string, input TemplateInput) (TemplateOutput, error)
	SetDefaultTemplate(ctx context.Context, id string) (TemplateOutput, error)
	DeleteTemplate(ctx context.Context, id string) (DeleteTemplateOutput, error)
	GetDefaultTemplate(ctx context.Context) (TemplateOutput, error)
	UploadLogo(ctx context.Context, file *multipart.FileHeader) (LogoUploadOutput, error)
	PreviewTemplate(ctx context.Context, id string) (RenderedOutput, error)
	IssueCertificate(ctx context.Context, req IssueCertificateRequest) (IssueCertificateOutput, error)
}
