package config

import (
	"context"
	"fmt"
	"os"

	"PortfolioGolang/database"
	blogHandler "PortfolioGolang/internal/api/blog/handler"
	blogRepository "PortfolioGolang/internal/api/blog/repository"
	blogService "PortfolioGolang/internal/api/blog/service"
	contactHandler "PortfolioGolang/internal/api/contact/handler"
	contactRepository "PortfolioGolang/internal/api/contact/repository"
	contactService "PortfolioGolang/internal/api/contact/service"
	homeHandler "PortfolioGolang/internal/api/home/handler"
	profileHandler "PortfolioGolang/internal/api/profile/handler"
	profileRepository "PortfolioGolang/internal/api/profile/repository"
	profileService "PortfolioGolang/internal/api/profile/service"
	projectHandler "PortfolioGolang/internal/api/project/handler"
	projectRepository "PortfolioGolang/internal/api/project/repository"
	projectService "PortfolioGolang/internal/api/project/service"
	"PortfolioGolang/internal/middleware"
	"PortfolioGolang/pkg/media"
	"PortfolioGolang/pkg/s3"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
	"PortfolioGolang/pkg/validation"
	"PortfolioGolang/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validation.Validator
	utils      utils.IUtils
	media      media.Storage
	mediaRoot  string
	smtpMailer smtp.ItfSmtp
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.validator == nil {
		server.validator = validation.New()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validation.Validator) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to the store named by DB_DRIVER. SQLite databases are
// migrated on open; Postgres is migrated with the admin CLI.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		driver := database.DriverFromEnv()

		db, err := database.New(driver)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if driver == database.DriverSQLite {
			if err := database.Migrate(db); err != nil {
				db.Close()
				return fmt.Errorf("failed to migrate sqlite database: %w", err)
			}
		}

		s.db = db
		return nil
	}
}

// WithDB uses an already opened database.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

// WithMediaStorage sets the asset backend. A non-empty localRoot is also served
// under /media.
func WithMediaStorage(storage media.Storage, localRoot string) ServerOption {
	return func(s *Server) error {
		s.media = storage
		s.mediaRoot = localRoot
		return nil
	}
}

// WithSMTPMailer accepts nil, which disables contact notifications.
func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

// NewMediaStorage builds the backend named by MEDIA_BACKEND and returns the local
// root when the files live on disk.
func NewMediaStorage(logger *logrus.Logger) (media.Storage, string, error) {
	switch backend := os.Getenv("MEDIA_BACKEND"); backend {
	case "", "local":
		root := os.Getenv("MEDIA_ROOT")
		if root == "" {
			root = "./storage/media"
		}
		return media.NewLocal(root, "/media/"), root, nil
	case "s3":
		storage, err := s3.New(logger)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create S3 media storage: %w", err)
		}
		return storage, "", nil
	default:
		return nil, "", fmt.Errorf("unsupported MEDIA_BACKEND %q", backend)
	}
}

func (s *Server) RegisterHandler() {
	// Profile
	profileRepo := profileRepository.New(s.db, s.log)
	profileServices := profileService.NewProfileService(s.log, profileRepo, s.media)

	s.middleware = middleware.New(s.log, profileServices)
	profileHandlers := profileHandler.New(s.log, s.middleware, profileServices)

	// Projects and templates
	projectRepo := projectRepository.New(s.db, s.log)
	projectServices := projectService.NewProjectService(s.log, projectRepo)
	projectHandlers := projectHandler.New(s.log, s.middleware, projectServices)

	// Blog
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogService(s.log, blogRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.middleware, blogServices)

	// Contact
	contactRepo := contactRepository.New(s.db, s.log)
	contactServices := contactService.NewContactService(s.log, contactRepo, s.smtpMailer)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	// Home
	homeHandlers := homeHandler.New(s.log, s.middleware, projectServices, profileServices, blogServices)

	s.handlers = append(s.handlers, homeHandlers, profileHandlers, projectHandlers, blogHandlers, contactHandlers)
}

// Mount installs middleware and routes. Run calls it; tests call it directly and
// drive the app with fiber's Test.
func (s *Server) Mount() {
	if s.middleware == nil {
		s.RegisterHandler()
	}

	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()

	s.engine.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		MaxAge: 86400,
	}))
	if s.mediaRoot != "" {
		s.engine.Static("/media", s.mediaRoot)
	}

	pages := s.engine.Group("", s.middleware.NewProfileMiddleware())
	for _, h := range s.handlers {
		h.Start(pages)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		if err := s.db.PingContext(ctx.UserContext()); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return ctx.JSON(fiber.Map{
			"status": "ok",
		})
	})
}
