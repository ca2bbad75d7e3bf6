package catalogHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/handlerUtil"
	jwtPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/jwt"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/log"
	"golang.org/x/net/context"
)

func (h *CatalogHandler) GetDestinations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var filter catalog.DestinationFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"country":    filter.Country,
		"name":       filter.Name,
	}).Debug("Processing get destinations request")

	res, err := h.catalogService.GetDestinations(c, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_destinations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CatalogHandler) GetDestinationByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if err := h.validator.Var(id, "required,uuid"); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.catalogService.GetDestinationByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_destination")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

// CreateDestination accepts either a JSON body or a multipart form with an
// optional "photo" file.
func (h *CatalogHandler) CreateDestination(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"user_id":    userData.ID,
	}).Debug("Processing create destination request")

	var req catalog.CreateDestinationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Ignore error - photo is optional
	photo, _ := ctx.FormFile("photo")

	res, err := h.catalogService.CreateDestination(c, req, photo)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_destination")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}
