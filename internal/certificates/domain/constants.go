package domain

import "time"

const (
	PlaceholderStudentName    = "{{student_name}}"
	PlaceholderCourseName     = "{{course_name}}"
	PlaceholderCompletionDate = "{{completion_date}}"
	PlaceholderCertificateID  = "{{certificate_id}}"
)

const (
	DefaultTitleText    = "Certificate of Completion"
	DefaultSubtitleText = "This is to certify that"
	DefaultBodyText     = "has successfully completed " + PlaceholderCourseName
	DefaultFooterText   = "Issued on " + PlaceholderCompletionDate

	DefaultPrimaryColor    = "#1e3a8a"
	DefaultSecondaryColor  = "#d4af37"
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#1f2937"
	DefaultBorderColor     = "#d4af37"

	DefaultTitleFontFamily = "Playfair Display"
	DefaultBodyFontFamily  = "Georgia"

	DefaultTitleFontSize  = 48
	DefaultNameFontSize   = 36
	DefaultBodyFontSize   = 16
	DefaultFooterFontSize = 12
)

const (
	LogoFolder              = "certificate-logos"
	CertificateIssuedEmail  = "certificate-issued"
	CompletionDateLayout    = "January 2, 2006"
	DefaultTemplateCacheTTL = 10 * time.Minute
)
