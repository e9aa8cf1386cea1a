package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"lms_backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service wraps the process-wide connection pool.
type Service interface {
	Pool() *pgxpool.Pool
	Health() map[string]string
	Close()
}

type Config struct {
	URL      string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
	MaxConns int32
}

func ConfigFromEnv() Config {
	maxConns, _ := strconv.Atoi(os.Getenv("DB_MAX_CONNS"))
	return Config{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_DATABASE"),
		Schema:   os.Getenv("DB_SCHEMA"),
		MaxConns: int32(maxConns),
	}
}

// ConnString prefers URL and otherwise assembles a postgres:// URL from parts.
func (c Config) ConnString() string {
	if c.URL != "" {
		return c.URL
	}

	port := c.Port
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Host + ":" + port,
		Path:   c.Database,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	if c.Schema != "" {
		q.Set("search_path", c.Schema)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

type service struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and pings it. The caller owns the returned Service and
// must Close it.
func Connect(ctx context.Context, cfg Config) (Service, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &service{pool: pool}, nil
}

// New connects using the environment and exits the process on failure.
func New() Service {
	s, err := Connect(context.Background(), ConfigFromEnv())
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	return s
}

func (s *service) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.pool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		logger.Error("database health check failed", "error", err)
		return stats
	}

	poolStats := s.pool.Stat()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["total_connections"] = strconv.Itoa(int(poolStats.TotalConns()))
	stats["idle_connections"] = strconv.Itoa(int(poolStats.IdleConns()))
	stats["acquired_connections"] = strconv.Itoa(int(poolStats.AcquiredConns()))
	stats["max_connections"] = strconv.Itoa(int(poolStats.MaxConns()))
	stats["acquire_count"] = strconv.FormatInt(poolStats.AcquireCount(), 10)

	if poolStats.AcquiredConns() >= poolStats.MaxConns() {
		stats["message"] = "The database is experiencing heavy load."
	}

	return stats
}

func (s *service) Close() {
	s.pool.Close()
}
