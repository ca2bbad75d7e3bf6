package catalogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	catalogService "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/service"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/middleware"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	destinations := srv.Group("/destinations")
	destinations.Get("", h.GetDestinations)
	destinations.Get("/:id", h.GetDestinationByID)
	destinations.Post("", h.middleware.NewTokenMiddleware, h.CreateDestination)

	packages := srv.Group("/packages")
	packages.Get("", h.GetPackages)
	packages.Get("/agent/:agentId", h.GetPackagesByAgent)
	packages.Get("/:id", h.GetPackageByID)
	packages.Post("", h.middleware.NewTokenMiddleware, h.CreatePackage)
}
