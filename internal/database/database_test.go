package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ConnString(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		cfg := Config{URL: "postgres://u:p@db:5432/lms", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@db:5432/lms", cfg.ConnString())
	})

	t.Run("assembled from parts", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Username: "lms",
			Password: "p@ss word",
			Database: "lms",
			Schema:   "public",
		}

		u, err := url.Parse(cfg.ConnString())
		require.NoError(t, err)
		assert.Equal(t, "postgres", u.Scheme)
		assert.Equal(t, "localhost:5432", u.Host)
		assert.Equal(t, "/lms", u.Path)
		pw, _ := u.User.Password()
		assert.Equal(t, "p@ss word", pw)
		assert.Equal(t, "public", u.Query().Get("search_path"))
		assert.Equal(t, "disable", u.Query().Get("sslmode"))
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNS", "7")

	cfg := ConfigFromEnv()
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, "6543", cfg.Port)
	assert.Equal(t, int32(7), cfg.MaxConns)
}
