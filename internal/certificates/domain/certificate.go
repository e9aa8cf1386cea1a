package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certificate records one issuance. TemplateID becomes nil when the template
// is later deleted.
type Certificate struct {
	ID           uuid.UUID
	TemplateID   *uuid.UUID
	StudentEmail string
	StudentName  string
	CourseName   string
	CompletedAt  time.Time
	CreatedAt    time.Time
}

func NewCertificate(templateID uuid.UUID, studentEmail, studentName, courseName string, completedAt time.Time) *Certificate {
	return &Certificate{
		ID:           uuid.New(),
		TemplateID:   &templateID,
		StudentEmail: strings.TrimSpace(studentEmail),
		StudentName:  strings.TrimSpace(studentName),
		CourseName:   strings.TrimSpace(courseName),
		CompletedAt:  completedAt,
	}
}

func (c *Certificate) RenderValues() RenderValues {
	return RenderValues{
		StudentName:    c.StudentName,
		CourseName:     c.CourseName,
		CompletionDate: c.CompletedAt,
		CertificateID:  c.ID.String(),
	}
}
