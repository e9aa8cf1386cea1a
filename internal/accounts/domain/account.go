package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type Account struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	IsAdmin          bool
	IsActive         bool
	TwoFactorEnabled bool
	// TwoFactorSecret holds the sealed TOTP seed and is nil whenever
	// TwoFactorEnabled is false.
	TwoFactorSecret *string
	LastLoginAt     *time.Time
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeEmail trims surrounding whitespace. Case is preserved; lookups
// compare lower(email) on the store side.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
