package domain

import "errors"

var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrInvalidEmail            = errors.New("email format is invalid")
	ErrInvalidUserID           = errors.New("invalid user ID")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidCurrentPassword  = errors.New("current password is incorrect")
	ErrTooManyLoginAttempts    = errors.New("too many login attempts, please try again later")
	ErrSessionNotFound         = errors.New("session not found")
	ErrTwoFactorCodeRequired   = errors.New("two-factor code required")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")
	ErrTwoFactorNotEnabled     = errors.New("two-factor authentication is not enabled")
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor authentication is already enabled")
)
