// Command disable-2fa turns two-factor authentication off for one account.
//
//	disable-2fa -email admin@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"lms_backend/internal/accounts/repository"
	"lms_backend/internal/accounts/usecase"
	"lms_backend/internal/database"
	"lms_backend/pkg/logger"
)

const defaultEmail = "admin@example.com"

func main() {
	var (
		email   = flag.String("email", getenv("DISABLE_2FA_EMAIL", defaultEmail), "email of the account to update")
		timeout = flag.Duration("timeout", 30*time.Second, "overall time limit")
	)
	flag.Parse()

	logger.Init()
	os.Exit(execute(connectFromEnv, newAdminService, *email, *timeout, os.Stdout))
}

type (
	connector    func(ctx context.Context) (database.Service, error)
	adminFactory func(db database.Service) usecase.AdminUsecase
)

func connectFromEnv(ctx context.Context) (database.Service, error) {
	return database.Connect(ctx, database.ConfigFromEnv())
}

func newAdminService(db database.Service) usecase.AdminUsecase {
	return usecase.NewAdminService(repository.NewAccountStore(db))
}

// execute owns the connection so that it is closed before main exits,
// whatever the outcome.
func execute(connect connector, newAdmin adminFactory, email string, timeout time.Duration, out io.Writer) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := connect(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return 1
	}
	defer db.Close()

	if err := run(ctx, newAdmin(db), email, out); err != nil {
		logger.Error("failed to disable two-factor authentication", "email", email, "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, admin usecase.AdminUsecase, email string, out io.Writer) error {
	result, err := admin.DisableTwoFactor(ctx, email)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Two-factor authentication disabled for %s\n", result.Email)
	return err
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
