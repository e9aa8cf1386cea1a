package repository

import (
	"context"
	"errors"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, email, password_hash, first_name, last_name, is_admin, is_active,
		two_factor_enabled, two_factor_secret, last_login_at`

type AccountStore struct {
	db database.Service
}

func NewAccountStore(db database.Service) AccountRepository {
	return &AccountStore{
		db: db,
	}
}

func (s *AccountStore) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
			  FROM users WHERE lower(email) = lower($1)`

	return s.queryAccount(ctx, query, email)
}

func (s *AccountStore) GetAccountByID(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
			  FROM users WHERE id = $1`

	return s.queryAccount(ctx, query, userID)
}

func (s *AccountStore) queryAccount(ctx context.Context, query string, arg any) (*domain.Account, error) {
	account := &domain.Account{}
	err := s.db.Pool().QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.IsAdmin,
		&account.IsActive,
		&account.TwoFactorEnabled,
		&account.TwoFactorSecret,
		&account.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

func (s *AccountStore) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

	_, err := s.db.Pool().Exec(ctx, query, userID)
	return err
}

func (s *AccountStore) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	commandTag, err := s.db.Pool().Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (s *AccountStore) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (user_id, session_token, ip_address, user_agent, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	return s.db.Pool().QueryRow(ctx, query,
		session.UserID,
		session.SessionToken,
		session.IpAddress,
		session.UserAgent,
		session.ExpiresAt,
		session.CreatedAt,
	).Scan(&session.ID)
}

func (s *AccountStore) DeleteSessionByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE session_token = $1`

	commandTag, err := s.db.Pool().Exec(ctx, query, token)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (s *AccountStore) EnableTwoFactor(ctx context.Context, userID uuid.UUID, sealedSecret string) error {
	query := `UPDATE users SET two_factor_enabled = true, two_factor_secret = $2, updated_at = NOW()
			  WHERE id = $1`

	commandTag, err := s.db.Pool().Exec(ctx, query, userID, sealedSecret)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (s *AccountStore) DisableTwoFactor(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET two_factor_enabled = false, two_factor_secret = NULL, updated_at = NOW()
			  WHERE id = $1`

	commandTag, err := s.db.Pool().Exec(ctx, query, userID)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (s *AccountStore) DisableTwoFactorByEmail(ctx context.Context, email string) (string, error) {
	query := `UPDATE users SET two_factor_enabled = false, two_factor_secret = NULL, updated_at = NOW()
			  WHERE lower(email) = lower($1)
			  RETURNING email`

	var updated string
	err := s.db.Pool().QueryRow(ctx, query, email).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrAccountNotFound
		}
		return "", err
	}

	return updated, nil
}
