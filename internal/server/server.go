package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"

	"lms_backend/internal/database"
	"lms_backend/pkg/crypto"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/mailer"
	"lms_backend/pkg/storage"
	lmsvalidator "lms_backend/pkg/validator"
)

type Server struct {
	port int

	db       database.Service
	mailer   mailer.Mailer
	storage  storage.Storage
	secrets  *crypto.SecretBox
	validate *validator.Validate
}

const (
	FROM_EMAIL = "LMS <no-reply@lms.example.com>"
)

// NewServer wires every dependency from the environment. The returned func
// releases the database pool and must run after the server has shut down.
func NewServer() (*http.Server, func()) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	secrets, err := crypto.NewSecretBox(os.Getenv("ENCRYPTION_KEY"))
	if err != nil {
		logger.Error("invalid ENCRYPTION_KEY", "error", err)
		os.Exit(1)
	}

	store, err := newStorage(port)
	if err != nil {
		logger.Error("media library unavailable", "error", err)
		os.Exit(1)
	}

	NewServer := &Server{
		port:     port,
		db:       database.New(),
		mailer:   mailer.New(os.Getenv("RESEND_API_KEY"), FROM_EMAIL),
		storage:  store,
		secrets:  secrets,
		validate: lmsvalidator.New(),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, NewServer.db.Close
}

// newStorage uses the R2 bucket when it is configured and falls back to an
// in-process store otherwise.
func newStorage(port int) (storage.Storage, error) {
	factory := storage.NewFactory()

	r2 := storage.R2ConfigFromEnv()
	if r2.Validate() == nil {
		return factory.Create(r2)
	}

	publicURL := os.Getenv("MEDIA_PUBLIC_URL")
	if publicURL == "" {
		publicURL = fmt.Sprintf("http://localhost:%d/media", port)
	}
	logger.Warn("R2 not configured, media library kept in memory", "public_url", publicURL)
	return factory.Create(&storage.MemoryConfig{PublicURL: publicURL})
}
