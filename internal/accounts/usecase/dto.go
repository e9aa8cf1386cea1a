package usecase

import (
	"time"

	"lms_backend/internal/accounts/domain"
)

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Code     string `json:"code,omitempty" form:"code" validate:"omitempty,totpcode"`
}

type LoginOutput struct {
	User    AccountInfo `json:"user"`
	Session SessionInfo `json:"-"`
	Message string      `json:"message"`
}

type AccountInfo struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	IsAdmin          bool    `json:"isAdmin"`
	TwoFactorEnabled bool    `json:"twoFactorEnabled"`
	LastLoginAt      *string `json:"lastLoginAt"`
}

type SessionInfo struct {
	Token     string
	ExpiresAt time.Time
}

type LogoutOutput struct {
	Message string `json:"message"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" validate:"required,strongpassword,nefield=CurrentPassword"`
}

type ChangePasswordOutput struct {
	Message string `json:"message"`
}

type TwoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"`
}

type EnableTwoFactorRequest struct {
	Secret string `json:"secret" form:"secret" validate:"required"`
	Code   string `json:"code" form:"code" validate:"required,totpcode"`
}

type DisableTwoFactorRequest struct {
	Code string `json:"code" form:"code" validate:"required,totpcode"`
}

type TwoFactorStatusOutput struct {
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
	Message          string `json:"message"`
}

type AdminDisableTwoFactorRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
}

type AdminDisableTwoFactorOutput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func ToAccountInfo(account *domain.Account) AccountInfo {
	var lastLoginAt *string
	if account.LastLoginAt != nil {
		formatted := account.LastLoginAt.UTC().Format(time.RFC3339)
		lastLoginAt = &formatted
	}

	return AccountInfo{
		ID:               account.ID.String(),
		Email:            account.Email,
		FirstName:        account.FirstName,
		LastName:         account.LastName,
		IsAdmin:          account.IsAdmin,
		TwoFactorEnabled: account.TwoFactorEnabled,
		LastLoginAt:      lastLoginAt,
	}
}
