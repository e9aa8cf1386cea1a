package usecase

import "context"

//go:generate mockgen -destination=../test/mock_account_usecase.go -package=test lms_backend/internal/accounts/usecase AccountUsecase,AdminUsecase
type AccountUsecase interface {
	Login(ctx context.Context, input LoginInput, userAgent, ipAddress string) (LoginOutput, error)
	Logout(ctx context.Context, token string) (LogoutOutput, error)
	GetProfile(ctx context.Context, userID string) (AccountInfo, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (ChangePasswordOutput, error)
	SetupTwoFactor(ctx context.Context, userID string) (TwoFactorSetupResponse, error)
	EnableTwoFactor(ctx context.Context, userID string, req EnableTwoFactorRequest) (TwoFactorStatusOutput, error)
	DisableTwoFactor(ctx context.Context, userID string, req DisableTwoFactorRequest) (TwoFactorStatusOutput, error)
}

// AdminUsecase holds maintenance operations run on behalf of an operator,
// either through the admin API or the disable-2fa command.
type AdminUsecase interface {
	DisableTwoFactor(ctx context.Context, email string) (AdminDisableTwoFactorOutput, error)
}

// SecretSealer protects TOTP seeds at rest.
type SecretSealer interface {
	Seal(plaintext string) (string, error)
	Open(ciphertext string) (string, error)
}
