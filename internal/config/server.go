package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/muhamyusuf/uas-paw-kelompok-6/database/postgres"
	catalogHandler "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/handler"
	catalogRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/repository"
	catalogService "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/service"
	qrisHandler "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/handler"
	qrisRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/repository"
	qrisService "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/service"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/middleware"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/redis"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/s3"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultQrisCacheTTL = 10 * time.Minute

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	s3Client     s3.ItfS3
	qrisCacheTTL time.Duration
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{qrisCacheTTL: defaultQrisCacheTTL}

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

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

// WithQrisCacheTTL sets how long the latest QRIS record stays cached. It reads
// QRIS_CACHE_TTL when ttl is zero.
func WithQrisCacheTTL(ttl time.Duration) ServerOption {
	return func(s *Server) error {
		if ttl <= 0 {
			ttl = redis.TTLFromEnv("QRIS_CACHE_TTL", defaultQrisCacheTTL)
		}
		s.qrisCacheTTL = ttl
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.utils == nil {
			return fmt.Errorf("utils must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.utils, rateLimitFromEnv(s.log)...)
		return nil
	}
}

// rateLimitFromEnv reads RATE_LIMIT_RPS and RATE_LIMIT_BURST. Both must be
// valid and positive, otherwise the middleware keeps its default budget.
func rateLimitFromEnv(log *logrus.Logger) []middleware.Option {
	rawRate, rawBurst := os.Getenv("RATE_LIMIT_RPS"), os.Getenv("RATE_LIMIT_BURST")
	if rawRate == "" && rawBurst == "" {
		return nil
	}

	reqRate, rateErr := strconv.ParseFloat(rawRate, 64)
	burst, burstErr := strconv.Atoi(rawBurst)
	if rateErr != nil || burstErr != nil || reqRate <= 0 || burst <= 0 {
		log.Warnf("Invalid rate limit RATE_LIMIT_RPS=%q RATE_LIMIT_BURST=%q, using defaults", rawRate, rawBurst)
		return nil
	}

	return []middleware.Option{middleware.WithRateLimit(rate.Limit(reqRate), burst)}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// QRIS and payments
	qrisRepo := qrisRepository.New(s.db, s.log)
	qrisServices := qrisService.NewQrisService(s.log, qrisRepo, s.s3Client, s.redisServer, s.utils, s.qrisCacheTTL)
	qrisHandlers := qrisHandler.New(s.log, s.validator, s.middleware, qrisServices)

	// Destinations and packages
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.NewCatalogService(s.log, catalogRepo, s.s3Client, s.utils)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, qrisHandlers, catalogHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware(), s.middleware.NewLoggingMiddleware())
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
