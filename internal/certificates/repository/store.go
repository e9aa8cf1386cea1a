package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lms_backend/internal/certificates/domain"
	"lms_backend/internal/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var templateColumns = []string{
	"id", "name", "is_default", "logo_url",
	"primary_color", "secondary_color", "background_color", "text_color", "border_color",
	"title_font_family", "body_font_family",
	"title_font_size", "name_font_size", "body_font_size", "footer_font_size",
	"title_text", "subtitle_text", "body_text", "footer_text",
	"show_border", "show_logo", "show_branding",
	"created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type templateStore struct {
	db database.Service
}

func NewTemplateRepository(db database.Service) TemplateRepository {
	return &templateStore{db: db}
}

// CreateTemplate inserts the template. When it is flagged default, the
// previous default is cleared in the same transaction.
func (s *templateStore) CreateTemplate(ctx context.Context, t *domain.Template) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := psql.Insert("certificate_templates").
		Columns(templateColumns...).
		Values(
			t.ID, t.Name, t.IsDefault, t.LogoURL,
			t.PrimaryColor, t.SecondaryColor, t.BackgroundColor, t.TextColor, t.BorderColor,
			t.TitleFontFamily, t.BodyFontFamily,
			t.TitleFontSize, t.NameFontSize, t.BodyFontSize, t.FooterFontSize,
			t.TitleText, t.SubtitleText, t.BodyText, t.FooterText,
			t.ShowBorder, t.ShowLogo, t.ShowBranding,
			t.CreatedAt, t.UpdatedAt,
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tx, err := s.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if t.IsDefault {
		if err := clearDefault(ctx, tx); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *templateStore) GetTemplateByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	query := psql.Select(templateColumns...).
		From("certificate_templates").
		Where(sq.Eq{"id": id.String()})

	return s.queryOne(ctx, query)
}

func (s *templateStore) GetDefaultTemplate(ctx context.Context) (*domain.Template, error) {
	query := psql.Select(templateColumns...).
		From("certificate_templates").
		Where(sq.Eq{"is_default": true}).
		Limit(1)

	t, err := s.queryOne(ctx, query)
	if errors.Is(err, domain.ErrTemplateNotFound) {
		return nil, domain.ErrNoDefaultTemplate
	}
	return t, err
}

func (s *templateStore) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	sqlStr, args, err := psql.Select(templateColumns...).
		From("certificate_templates").
		OrderBy("is_default DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Pool().Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// UpdateTemplate writes every field. is_default can only be raised here: when
// promote is set the previous default is cleared in the same transaction.
func (s *templateStore) UpdateTemplate(ctx context.Context, t *domain.Template, promote bool) error {
	t.UpdatedAt = time.Now()

	query := psql.Update("certificate_templates").
		Set("name", t.Name).
		Set("logo_url", t.LogoURL).
		Set("primary_color", t.PrimaryColor).
		Set("secondary_color", t.SecondaryColor).
		Set("background_color", t.BackgroundColor).
		Set("text_color", t.TextColor).
		Set("border_color", t.BorderColor).
		Set("title_font_family", t.TitleFontFamily).
		Set("body_font_family", t.BodyFontFamily).
		Set("title_font_size", t.TitleFontSize).
		Set("name_font_size", t.NameFontSize).
		Set("body_font_size", t.BodyFontSize).
		Set("footer_font_size", t.FooterFontSize).
		Set("title_text", t.TitleText).
		Set("subtitle_text", t.SubtitleText).
		Set("body_text", t.BodyText).
		Set("footer_text", t.FooterText).
		Set("show_border", t.ShowBorder).
		Set("show_logo", t.ShowLogo).
		Set("show_branding", t.ShowBranding).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID.String()})
	if promote {
		query = query.Set("is_default", true)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tx, err := s.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if promote {
		if err := clearDefault(ctx, tx); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	if promote {
		t.IsDefault = true
	}
	return nil
}

func (s *templateStore) SetDefaultTemplate(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := clearDefault(ctx, tx); err != nil {
		return err
	}

	sqlStr, args, err := psql.Update("certificate_templates").
		Set("is_default", true).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}

	return tx.Commit(ctx)
}

// DeleteTemplate never removes the default row, even if it became default
// after the caller last looked.
func (s *templateStore) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("certificate_templates").
		Where(sq.Eq{"id": id.String(), "is_default": false}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Pool().Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var isDefault bool
	err = s.db.Pool().QueryRow(ctx, `SELECT is_default FROM certificate_templates WHERE id = $1`, id).Scan(&isDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTemplateNotFound
		}
		return err
	}

	return domain.ErrDefaultTemplateDeletion
}

func (s *templateStore) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	c.CreatedAt = time.Now()

	sqlStr, args, err := psql.Insert("certificates").
		Columns("id", "template_id", "student_email", "student_name", "course_name", "completed_at", "created_at").
		Values(c.ID, c.TemplateID, c.StudentEmail, c.StudentName, c.CourseName, c.CompletedAt, c.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *templateStore) queryOne(ctx context.Context, query sq.SelectBuilder) (*domain.Template, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTemplate(s.db.Pool().QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}

	return t, nil
}

func clearDefault(ctx context.Context, tx pgx.Tx) error {
	sqlStr, args, err := psql.Update("certificate_templates").
		Set("is_default", false).
		Where(sq.Eq{"is_default": true}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to clear default template: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var t domain.Template
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.IsDefault,
		&t.LogoURL,
		&t.PrimaryColor,
		&t.SecondaryColor,
		&t.BackgroundColor,
		&t.TextColor,
		&t.BorderColor,
		&t.TitleFontFamily,
		&t.BodyFontFamily,
		&t.TitleFontSize,
		&t.NameFontSize,
		&t.BodyFontSize,
		&t.FooterFontSize,
		&t.TitleText,
		&t.SubtitleText,
		&t.BodyText,
		&t.FooterText,
		&t.ShowBorder,
		&t.ShowLogo,
		&t.ShowBranding,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
