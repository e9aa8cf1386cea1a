package domain

import "errors"

var (
	ErrTemplateNotFound        = errors.New("certificate template not found")
	ErrInvalidTemplate         = errors.New("certificate template is invalid")
	ErrInvalidTemplateID       = errors.New("invalid certificate template ID")
	ErrDefaultTemplateDeletion = errors.New("the default certificate template cannot be deleted")
	ErrDefaultTemplateRequired = errors.New("a default certificate template is required, set another template as default instead")
	ErrNoDefaultTemplate       = errors.New("no default certificate template configured")
	ErrInvalidCertificate      = errors.New("certificate request is invalid")
	ErrInvalidLogo             = errors.New("logo must be a PNG, JPEG, SVG or WEBP image of at most 3MB")
)
