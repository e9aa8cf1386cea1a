package repository

import (
	"context"

	"lms_backend/internal/accounts/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../test/mock_account_repository.go -package=test lms_backend/internal/accounts/repository AccountRepository
type AccountRepository interface {
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	CreateSession(ctx context.Context, session *domain.Session) error
	DeleteSessionByToken(ctx context.Context, token string) error
	EnableTwoFactor(ctx context.Context, userID uuid.UUID, sealedSecret string) error
	DisableTwoFactor(ctx context.Context, userID uuid.UUID) error
	// DisableTwoFactorByEmail clears the flag and the secret of the account
	// matching email and returns the stored email.
	DisableTwoFactorByEmail(ctx context.Context, email string) (string, error)
}
