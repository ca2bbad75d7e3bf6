package qrisHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	qrisService "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/service"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/middleware"
	"github.com/sirupsen/logrus"
)

type QrisHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	qrisService qrisService.IQrisService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	qs qrisService.IQrisService,
) *QrisHandler {
	return &QrisHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		qrisService: qs,
	}
}

func (h *QrisHandler) Start(srv fiber.Router) {
	qris := srv.Group("/qris")

	// Public codec endpoints
	qris.Post("/preview", h.middleware.NewRateLimiter, h.PreviewQris)
	qris.Post("/decode", h.middleware.NewRateLimiter, h.DecodeQris)

	qris.Get("", h.GetAllQris)
	qris.Get("/:id", h.GetQrisByID)

	qris.Post("", h.middleware.NewTokenMiddleware, h.CreateQris)
	qris.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteQris)

	payment := srv.Group("/payment")
	payment.Post("/generate", h.middleware.NewTokenMiddleware, h.GeneratePayment)
}
