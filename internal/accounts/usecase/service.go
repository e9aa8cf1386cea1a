package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"time"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/accounts/repository"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/password"

	"github.com/bluele/gcache"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
)

type AccountService struct {
	repo    repository.AccountRepository
	secrets SecretSealer
	cache   gcache.Cache
}

func NewAccountService(r repository.AccountRepository, secrets SecretSealer) AccountUsecase {
	return &AccountService{
		repo:    r,
		secrets: secrets,
		cache:   gcache.New(100).LRU().Expiration(time.Minute * 15).Build(),
	}
}

func (s *AccountService) Login(ctx context.Context, input LoginInput, userAgent, ipAddress string) (LoginOutput, error) {
	attemptKey := strings.ToLower(domain.NormalizeEmail(input.Email))

	attempts, err := s.cache.Get(attemptKey)
	if err == nil && attempts.(int) >= domain.MaxLoginAttempts {
		logger.Warn("rate limit exceeded for login attempts", "ip", ipAddress)
		return LoginOutput{}, domain.ErrTooManyLoginAttempts
	}

	account, err := s.repo.GetAccountByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return LoginOutput{}, domain.ErrInvalidCredentials
		}
		logger.Error("repository error fetching account", "error", err)
		return LoginOutput{}, fmt.Errorf("failed to fetch account: %w", err)
	}

	if !account.IsActive {
		return LoginOutput{}, domain.ErrInvalidCredentials
	}

	passwordMatch, err := password.ComparePassword(account.PasswordHash, input.Password)
	if err != nil || !passwordMatch {
		s.recordFailedAttempt(attemptKey)
		return LoginOutput{}, domain.ErrInvalidCredentials
	}

	if account.TwoFactorEnabled {
		if input.Code == "" {
			return LoginOutput{}, domain.ErrTwoFactorCodeRequired
		}
		if !s.verifyStoredCode(account, input.Code) {
			s.recordFailedAttempt(attemptKey)
			return LoginOutput{}, domain.ErrInvalidTwoFactorCode
		}
	}

	s.cache.Remove(attemptKey)

	if err := s.repo.UpdateLastLoginAt(ctx, account.ID); err != nil {
		logger.Error("failed to update last login timestamp", "user_id", account.ID, "error", err)
	}

	token, err := domain.GenerateSecureToken()
	if err != nil {
		return LoginOutput{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &domain.Session{
		UserID:       account.ID,
		SessionToken: token,
		IpAddress:    ipAddress,
		UserAgent:    userAgent,
		ExpiresAt:    now.Add(domain.SessionDurationMinutes * time.Minute),
		CreatedAt:    now,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		logger.Error("failed to store session", "user_id", account.ID, "error", err)
		return LoginOutput{}, fmt.Errorf("failed to store session: %w", err)
	}

	return LoginOutput{
		User: ToAccountInfo(account),
		Session: SessionInfo{
			Token:     session.SessionToken,
			ExpiresAt: session.ExpiresAt,
		},
		Message: "Login successful",
	}, nil
}

func (s *AccountService) recordFailedAttempt(key string) {
	current := 1
	if attempts, err := s.cache.Get(key); err == nil {
		current = attempts.(int) + 1
	}
	if err := s.cache.Set(key, current); err != nil {
		logger.Error("cache error updating login attempts", "error", err)
	}
}

func (s *AccountService) Logout(ctx context.Context, token string) (LogoutOutput, error) {
	if token == "" {
		return LogoutOutput{}, domain.ErrInvalidCredentials
	}

	err := s.repo.DeleteSessionByToken(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		logger.Error("failed to delete session during logout", "error", err)
		return LogoutOutput{}, fmt.Errorf("failed to logout: %w", err)
	}

	return LogoutOutput{Message: "Logged out successfully"}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID string) (AccountInfo, error) {
	account, err := s.accountByID(ctx, userID)
	if err != nil {
		return AccountInfo{}, err
	}

	return ToAccountInfo(account), nil
}

func (s *AccountService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (ChangePasswordOutput, error) {
	account, err := s.accountByID(ctx, userID)
	if err != nil {
		return ChangePasswordOutput{}, err
	}

	passwordMatch, err := password.ComparePassword(account.PasswordHash, req.CurrentPassword)
	if err != nil {
		logger.Error("password comparison error", "user_id", userID, "error", err)
		return ChangePasswordOutput{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !passwordMatch {
		return ChangePasswordOutput{}, domain.ErrInvalidCurrentPassword
	}

	hashedPassword, err := password.HashPassword(req.NewPassword)
	if err != nil {
		return ChangePasswordOutput{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return ChangePasswordOutput{}, err
		}
		return ChangePasswordOutput{}, fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("password changed", "user_id", account.ID)
	return ChangePasswordOutput{Message: "Password updated"}, nil
}

func (s *AccountService) SetupTwoFactor(ctx context.Context, userID string) (TwoFactorSetupResponse, error) {
	account, err := s.accountByID(ctx, userID)
	if err != nil {
		return TwoFactorSetupResponse{}, err
	}

	if account.TwoFactorEnabled {
		return TwoFactorSetupResponse{}, domain.ErrTwoFactorAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      domain.TwoFactorIssuer,
		AccountName: account.Email,
	})
	if err != nil {
		logger.Error("failed to generate TOTP secret", "user_id", account.ID, "error", err)
		return TwoFactorSetupResponse{}, fmt.Errorf("failed to generate secret: %w", err)
	}

	img, err := key.Image(domain.QRCodeSize, domain.QRCodeSize)
	if err != nil {
		return TwoFactorSetupResponse{}, fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return TwoFactorSetupResponse{}, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return TwoFactorSetupResponse{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRCode:     base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func (s *AccountService) EnableTwoFactor(ctx context.Context, userID string, req EnableTwoFactorRequest) (TwoFactorStatusOutput, error) {
	account, err := s.accountByID(ctx, userID)
	if err != nil {
		return TwoFactorStatusOutput{}, err
	}

	if account.TwoFactorEnabled {
		return TwoFactorStatusOutput{}, domain.ErrTwoFactorAlreadyEnabled
	}

	if !totp.Validate(req.Code, req.Secret) {
		return TwoFactorStatusOutput{}, domain.ErrInvalidTwoFactorCode
	}

	sealed, err := s.secrets.Seal(req.Secret)
	if err != nil {
		logger.Error("failed to seal TOTP secret", "user_id", account.ID, "error", err)
		return TwoFactorStatusOutput{}, fmt.Errorf("failed to protect secret: %w", err)
	}

	if err := s.repo.EnableTwoFactor(ctx, account.ID, sealed); err != nil {
		logger.Error("failed to enable two-factor", "user_id", account.ID, "error", err)
		return TwoFactorStatusOutput{}, fmt.Errorf("failed to enable two-factor: %w", err)
	}

	logger.Info("two-factor authentication enabled", "user_id", account.ID)
	return TwoFactorStatusOutput{
		TwoFactorEnabled: true,
		Message:          "Two-factor authentication enabled",
	}, nil
}

func (s *AccountService) DisableTwoFactor(ctx context.Context, userID string, req DisableTwoFactorRequest) (TwoFactorStatusOutput, error) {
	account, err := s.accountByID(ctx, userID)
	if err != nil {
		return TwoFactorStatusOutput{}, err
	}

	if !account.TwoFactorEnabled {
		return TwoFactorStatusOutput{}, domain.ErrTwoFactorNotEnabled
	}

	if !s.verifyStoredCode(account, req.Code) {
		return TwoFactorStatusOutput{}, domain.ErrInvalidTwoFactorCode
	}

	if err := s.repo.DisableTwoFactor(ctx, account.ID); err != nil {
		logger.Error("failed to disable two-factor", "user_id", account.ID, "error", err)
		return TwoFactorStatusOutput{}, fmt.Errorf("failed to disable two-factor: %w", err)
	}

	logger.Info("two-factor authentication disabled", "user_id", account.ID)
	return TwoFactorStatusOutput{
		TwoFactorEnabled: false,
		Message:          "Two-factor authentication disabled",
	}, nil
}

func (s *AccountService) accountByID(ctx context.Context, userID string) (*domain.Account, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		logger.Error("repository error fetching account", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return account, nil
}

func (s *AccountService) verifyStoredCode(account *domain.Account, code string) bool {
	if account.TwoFactorSecret == nil {
		return false
	}

	secret, err := s.secrets.Open(*account.TwoFactorSecret)
	if err != nil {
		logger.Error("failed to open TOTP secret", "user_id", account.ID, "error", err)
		return false
	}

	return totp.Validate(code, secret)
}
