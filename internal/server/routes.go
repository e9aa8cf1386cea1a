package server

import (
	"net/http"

	accountHandler "lms_backend/internal/accounts/handler"
	accountRepository "lms_backend/internal/accounts/repository"
	accountUsecase "lms_backend/internal/accounts/usecase"
	certificateHandler "lms_backend/internal/certificates/handler"
	certificateRepository "lms_backend/internal/certificates/repository"
	certificateUsecase "lms_backend/internal/certificates/usecase"
	sessionMiddleware "lms_backend/internal/middleware"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/storage"
	"lms_backend/pkg/uploadfiles"
	lmsvalidator "lms_backend/pkg/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = lmsvalidator.NewEchoValidator(s.validate)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "remote_ip", v.RemoteIP}
			if v.Error != nil {
				logger.Error("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XFrameOptions:         "DENY",
		ContentTypeNosniff:    "nosniff",
		XSSProtection:         "1; mode=block",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' https:; connect-src 'self' https:;",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(100),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
		},
	}))
	e.Use(middleware.BodyLimit("4MB"))
	sessionMiddleware.InitSessionMiddleware(s.db.Pool())

	e.GET("/health", s.healthHandler)
	if mem, ok := s.storage.(*storage.MemoryStorage); ok {
		e.GET("/media/*", mediaHandler(mem))
	}
	apiGroup := e.Group("")

	s.setupAccountRoutes(apiGroup)
	s.setupCertificateRoutes(apiGroup)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}

// mediaHandler serves uploads held by the in-memory backend.
func mediaHandler(store *storage.MemoryStorage) echo.HandlerFunc {
	return func(c echo.Context) error {
		obj, ok := store.Get(c.Param("*"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
		}
		return c.Blob(http.StatusOK, obj.ContentType, obj.Data)
	}
}

func (s *Server) setupAccountRoutes(apiGroup *echo.Group) {
	accountStore := accountRepository.NewAccountStore(s.db)
	accounts := accountUsecase.NewAccountService(accountStore, s.secrets)
	admin := accountUsecase.NewAdminService(accountStore)

	accountHandler.NewAuthHandler(accounts).Bind(apiGroup.Group("/auth"))
	accountHandler.NewUserHandler(accounts).Bind(apiGroup.Group("/users"))
	accountHandler.NewAdminHandler(admin).Bind(apiGroup.Group("/admin"))
}

func (s *Server) setupCertificateRoutes(apiGroup *echo.Group) {
	templateStore := certificateRepository.NewTemplateRepository(s.db)
	templates := certificateUsecase.NewTemplateService(templateStore, uploadfiles.NewUploader(s.storage), s.mailer, s.validate)

	certificateHandler.NewTemplateHandler(templates).Bind(apiGroup.Group("/lms"))
}
