package domain

const (
	SessionDurationMinutes = 60 * 24 * 15
	SessionCookieName      = "session_token"

	MaxLoginAttempts = 5

	TwoFactorIssuer = "LMS"
	QRCodeSize      = 200
)
