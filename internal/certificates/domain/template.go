package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Template is the look of every certificate issued with it. Text fields may
// carry placeholders resolved by Render.
type Template struct {
	ID        uuid.UUID `validate:"-"`
	Name      string    `validate:"required,min=2,max=100"`
	IsDefault bool
	LogoURL   string `validate:"omitempty,url"`

	PrimaryColor    string `validate:"required,rgbhex"`
	SecondaryColor  string `validate:"required,rgbhex"`
	BackgroundColor string `validate:"required,rgbhex"`
	TextColor       string `validate:"required,rgbhex"`
	BorderColor     string `validate:"required,rgbhex"`

	TitleFontFamily string `validate:"required,fontfamily"`
	BodyFontFamily  string `validate:"required,fontfamily"`

	TitleFontSize  int `validate:"min=24,max=72"`
	NameFontSize   int `validate:"min=20,max=60"`
	BodyFontSize   int `validate:"min=10,max=24"`
	FooterFontSize int `validate:"min=8,max=18"`

	TitleText    string `validate:"required,max=500"`
	SubtitleText string `validate:"max=500"`
	BodyText     string `validate:"max=500"`
	FooterText   string `validate:"max=500"`

	ShowBorder   bool
	ShowLogo     bool
	ShowBranding bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTemplate returns a template named name with every other field at its
// default value.
func NewTemplate(name string) *Template {
	return &Template{
		ID:              uuid.New(),
		Name:            name,
		PrimaryColor:    DefaultPrimaryColor,
		SecondaryColor:  DefaultSecondaryColor,
		BackgroundColor: DefaultBackgroundColor,
		TextColor:       DefaultTextColor,
		BorderColor:     DefaultBorderColor,
		TitleFontFamily: DefaultTitleFontFamily,
		BodyFontFamily:  DefaultBodyFontFamily,
		TitleFontSize:   DefaultTitleFontSize,
		NameFontSize:    DefaultNameFontSize,
		BodyFontSize:    DefaultBodyFontSize,
		FooterFontSize:  DefaultFooterFontSize,
		TitleText:       DefaultTitleText,
		SubtitleText:    DefaultSubtitleText,
		BodyText:        DefaultBodyText,
		FooterText:      DefaultFooterText,
		ShowBorder:      true,
		ShowLogo:        true,
		ShowBranding:    true,
	}
}

type RenderValues struct {
	StudentName    string
	CourseName     string
	CompletionDate time.Time
	CertificateID  string
}

// Rendered is a template with its placeholders resolved, ready for a renderer.
type Rendered struct {
	TemplateID      uuid.UUID
	Title           string
	Subtitle        string
	StudentName     string
	Body            string
	Footer          string
	LogoURL         string
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	BorderColor     string
	TitleFontFamily string
	BodyFontFamily  string
	TitleFontSize   int
	NameFontSize    int
	BodyFontSize    int
	FooterFontSize  int
	ShowBorder      bool
	ShowBranding    bool
}

func (t *Template) Render(v RenderValues) Rendered {
	r := strings.NewReplacer(
		PlaceholderStudentName, v.StudentName,
		PlaceholderCourseName, v.CourseName,
		PlaceholderCompletionDate, v.CompletionDate.Format(CompletionDateLayout),
		PlaceholderCertificateID, v.CertificateID,
	)

	out := Rendered{
		TemplateID:      t.ID,
		Title:           r.Replace(t.TitleText),
		Subtitle:        r.Replace(t.SubtitleText),
		StudentName:     v.StudentName,
		Body:            r.Replace(t.BodyText),
		Footer:          r.Replace(t.FooterText),
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
		ShowBorder:      t.ShowBorder,
		ShowBranding:    t.ShowBranding,
	}
	if t.ShowLogo {
		out.LogoURL = t.LogoURL
	}

	return out
}
