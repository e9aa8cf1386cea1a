package usecase

import (
	"context"
	"errors"
	"fmt"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/accounts/repository"
	"lms_backend/pkg/logger"
)

type AdminService struct {
	repo repository.AccountRepository
}

func NewAdminService(r repository.AccountRepository) AdminUsecase {
	return &AdminService{repo: r}
}

// DisableTwoFactor turns two-factor off for the account matching email and
// clears its secret. Repeating the call on the same account succeeds and
// leaves the same state.
func (s *AdminService) DisableTwoFactor(ctx context.Context, email string) (AdminDisableTwoFactorOutput, error) {
	email = domain.NormalizeEmail(email)
	if !domain.IsValidEmail(email) {
		return AdminDisableTwoFactorOutput{}, domain.ErrInvalidEmail
	}

	updated, err := s.repo.DisableTwoFactorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.Warn("no account matches email", "email", email)
			return AdminDisableTwoFactorOutput{}, domain.ErrAccountNotFound
		}
		logger.Error("failed to disable two-factor", "email", email, "error", err)
		return AdminDisableTwoFactorOutput{}, fmt.Errorf("failed to disable two-factor: %w", err)
	}

	logger.Info("two-factor authentication disabled by operator", "email", updated)
	return AdminDisableTwoFactorOutput{
		Email:   updated,
		Message: "Two-factor authentication disabled",
	}, nil
}
