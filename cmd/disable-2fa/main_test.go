package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"lms_backend/internal/accounts/domain"
	"lms_backend/internal/accounts/test"
	"lms_backend/internal/accounts/usecase"
	"lms_backend/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("prints confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := test.NewMockAdminUsecase(ctrl)
		admin.EXPECT().DisableTwoFactor(ctx, "admin@example.com").
			Return(usecase.AdminDisableTwoFactorOutput{Email: "admin@example.com"}, nil)

		var out bytes.Buffer
		require.NoError(t, run(ctx, admin, "admin@example.com", &out))
		assert.Equal(t, "Two-factor authentication disabled for admin@example.com\n", out.String())
	})

	t.Run("unknown account reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := test.NewMockAdminUsecase(ctrl)
		admin.EXPECT().DisableTwoFactor(ctx, "ghost@example.com").
			Return(usecase.AdminDisableTwoFactorOutput{}, domain.ErrAccountNotFound)

		var out bytes.Buffer
		err := run(ctx, admin, "ghost@example.com", &out)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		assert.Empty(t, out.String())
	})
}

type fakeService struct {
	closed bool
}

func (f *fakeService) Pool() *pgxpool.Pool {
	return nil
}

func (f *fakeService) Health() map[string]string {
	return map[string]string{"status": "up"}
}

func (f *fakeService) Close() {
	f.closed = true
}

func TestExecute(t *testing.T) {
	connectTo := func(db *fakeService) connector {
		return func(ctx context.Context) (database.Service, error) { return db, nil }
	}
	adminFor := func(admin usecase.AdminUsecase) adminFactory {
		return func(database.Service) usecase.AdminUsecase { return admin }
	}

	t.Run("success closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := test.NewMockAdminUsecase(ctrl)
		admin.EXPECT().DisableTwoFactor(gomock.Any(), "admin@example.com").
			Return(usecase.AdminDisableTwoFactorOutput{Email: "admin@example.com"}, nil)

		db := &fakeService{}
		var out bytes.Buffer
		code := execute(connectTo(db), adminFor(admin), "admin@example.com", time.Second, &out)

		assert.Equal(t, 0, code)
		assert.True(t, db.closed)
		assert.Contains(t, out.String(), "admin@example.com")
	})

	t.Run("unknown account exits 1 and closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := test.NewMockAdminUsecase(ctrl)
		admin.EXPECT().DisableTwoFactor(gomock.Any(), "ghost@example.com").
			Return(usecase.AdminDisableTwoFactorOutput{}, domain.ErrAccountNotFound)

		db := &fakeService{}
		var out bytes.Buffer
		code := execute(connectTo(db), adminFor(admin), "ghost@example.com", time.Second, &out)

		assert.Equal(t, 1, code)
		assert.True(t, db.closed)
		assert.Empty(t, out.String())
	})

	t.Run("connection failure exits 1", func(t *testing.T) {
		failing := func(ctx context.Context) (database.Service, error) {
			return nil, errors.New("connection refused")
		}
		newAdmin := func(database.Service) usecase.AdminUsecase {
			t.Fatal("admin service must not be built without a connection")
			return nil
		}

		var out bytes.Buffer
		assert.Equal(t, 1, execute(failing, newAdmin, "admin@example.com", time.Second, &out))
	})
}

func TestGetenv(t *testing.T) {
	t.Setenv("DISABLE_2FA_EMAIL", "  ")
	assert.Equal(t, defaultEmail, getenv("DISABLE_2FA_EMAIL", defaultEmail))

	t.Setenv("DISABLE_2FA_EMAIL", "ops@example.com")
	assert.Equal(t, "ops@example.com", getenv("DISABLE_2FA_EMAIL", defaultEmail))
}
