package usecase

import (
	"time"

	"lms_backend/internal/certificates/domain"
)

// TemplateInput is shared by create and update. Nil fields keep their current
// value on update and their default value on create.
type TemplateInput struct {
	Name      *string `json:"name"`
	IsDefault *bool   `json:"isDefault"`
	LogoURL   *string `json:"logoUrl"`

	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	BorderColor     *string `json:"borderColor"`

	TitleFontFamily *string `json:"titleFontFamily"`
	BodyFontFamily  *string `json:"bodyFontFamily"`

	TitleFontSize  *int `json:"titleFontSize"`
	NameFontSize   *int `json:"nameFontSize"`
	BodyFontSize   *int `json:"bodyFontSize"`
	FooterFontSize *int `json:"footerFontSize"`

	TitleText    *string `json:"titleText"`
	SubtitleText *string `json:"subtitleText"`
	BodyText     *string `json:"bodyText"`
	FooterText   *string `json:"footerText"`

	ShowBorder   *bool `json:"showBorder"`
	ShowLogo     *bool `json:"showLogo"`
	ShowBranding *bool `json:"showBranding"`
}

func (in TemplateInput) applyTo(t *domain.Template) {
	setString(&t.Name, in.Name)
	setString(&t.LogoURL, in.LogoURL)
	setString(&t.PrimaryColor, in.PrimaryColor)
	setString(&t.SecondaryColor, in.SecondaryColor)
	setString(&t.BackgroundColor, in.BackgroundColor)
	setString(&t.TextColor, in.TextColor)
	setString(&t.BorderColor, in.BorderColor)
	setString(&t.TitleFontFamily, in.TitleFontFamily)
	setString(&t.BodyFontFamily, in.BodyFontFamily)
	setString(&t.TitleText, in.TitleText)
	setString(&t.SubtitleText, in.SubtitleText)
	setString(&t.BodyText, in.BodyText)
	setString(&t.FooterText, in.FooterText)
	setInt(&t.TitleFontSize, in.TitleFontSize)
	setInt(&t.NameFontSize, in.NameFontSize)
	setInt(&t.BodyFontSize, in.BodyFontSize)
	setInt(&t.FooterFontSize, in.FooterFontSize)
	setBool(&t.ShowBorder, in.ShowBorder)
	setBool(&t.ShowLogo, in.ShowLogo)
	setBool(&t.ShowBranding, in.ShowBranding)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

type TemplateOutput struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IsDefault       bool   `json:"isDefault"`
	LogoURL         string `json:"logoUrl"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderColor     string `json:"borderColor"`
	TitleFontFamily string `json:"titleFontFamily"`
	BodyFontFamily  string `json:"bodyFontFamily"`
	TitleFontSize   int    `json:"titleFontSize"`
	NameFontSize    int    `json:"nameFontSize"`
	BodyFontSize    int    `json:"bodyFontSize"`
	FooterFontSize  int    `json:"footerFontSize"`
	TitleText       string `json:"titleText"`
	SubtitleText    string `json:"subtitleText"`
	BodyText        string `json:"bodyText"`
	FooterText      string `json:"footerText"`
	ShowBorder      bool   `json:"showBorder"`
	ShowLogo        bool   `json:"showLogo"`
	ShowBranding    bool   `json:"showBranding"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func ToTemplateOutput(t *domain.Template) TemplateOutput {
	return TemplateOutput{
		ID:              t.ID.String(),
		Name:            t.Name,
		IsDefault:       t.IsDefault,
		LogoURL:         t.LogoURL,
		PrimaryColor:    t.PrimaryColor,
		SecondaryColor:  t.SecondaryColor,
		BackgroundColor: t.BackgroundColor,
		TextColor:       t.TextColor,
		BorderColor:     t.BorderColor,
		TitleFontFamily: t.TitleFontFamily,
		BodyFontFamily:  t.BodyFontFamily,
		TitleFontSize:   t.TitleFontSize,
		NameFontSize:    t.NameFontSize,
		BodyFontSize:    t.BodyFontSize,
		FooterFontSize:  t.FooterFontSize,
		TitleText:       t.TitleText,
		SubtitleText:    t.SubtitleText,
		BodyText:        t.BodyText,
		FooterText:      t.FooterText,
		ShowBorder:      t.ShowBorder,
		ShowLogo:        t.ShowLogo,
		ShowBranding:    t.ShowBranding,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type TemplateListOutput struct {
	Templates []TemplateOutput `json:"templates"`
}

type LogoUploadOutput struct {
	LogoURL string `json:"logoUrl"`
}

type DeleteTemplateOutput struct {
	Message string `json:"message"`
}

type RenderedOutput struct {
	TemplateID      string `json:"templateId"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	StudentName     string `json:"studentName"`
	Body            string `json:"body"`
	Footer          string `json:"footer"`
	LogoURL         string `json:"logoUrl,omitempty"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderColor     string `json:"borderColor"`
	TitleFontFamily string `json:"titleFontFamily"`
	BodyFontFamily  string `json:"bodyFontFamily"`
	TitleFontSize   int    `json:"titleFontSize"`
	NameFontSize    int    `json:"nameFontSize"`
	BodyFontSize    int    `json:"bodyFontSize"`
	FooterFontSize  int    `json:"footerFontSize"`
	ShowBorder      bool   `json:"showBorder"`
	ShowBranding    bool   `json:"showBranding"`
}

func ToRenderedOutput(r domain.Rendered) RenderedOutput {
	return RenderedOutput{
		TemplateID:      r.TemplateID.String(),
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		StudentName:     r.StudentName,
		Body:            r.Body,
		Footer:          r.Footer,
		LogoURL:         r.LogoURL,
		PrimaryColor:    r.PrimaryColor,
		SecondaryColor:  r.SecondaryColor,
		BackgroundColor: r.BackgroundColor,
		TextColor:       r.TextColor,
		BorderColor:     r.BorderColor,
		TitleFontFamily: r.TitleFontFamily,
		BodyFontFamily:  r.BodyFontFamily,
		TitleFontSize:   r.TitleFontSize,
		NameFontSize:    r.NameFontSize,
		BodyFontSize:    r.BodyFontSize,
		FooterFontSize:  r.FooterFontSize,
		ShowBorder:      r.ShowBorder,
		ShowBranding:    r.ShowBranding,
	}
}

type IssueCertificateRequest struct {
	TemplateID   string     `json:"templateId" form:"templateId" validate:"omitempty,uuid"`
	StudentEmail string     `json:"studentEmail" form:"studentEmail" validate:"required,email"`
	StudentName  string     `json:"studentName" form:"studentName" validate:"required,max=200"`
	CourseName   string     `json:"courseName" form:"courseName" validate:"required,max=200"`
	CompletedAt  *time.Time `json:"completedAt" form:"completedAt"`
}

type IssueCertificateOutput struct {
	CertificateID string         `json:"certificateId"`
	Certificate   RenderedOutput `json:"certificate"`
	Message       string         `json:"message"`
}
