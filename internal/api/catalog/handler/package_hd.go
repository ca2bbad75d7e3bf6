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

func (h *CatalogHandler) GetPackages(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	destinationID := ctx.Query("destination_id")
	if err := h.validator.Var(destinationID, "omitempty,uuid"); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.catalogService.GetPackages(c, destinationID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_packages")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CatalogHandler) GetPackageByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if err := h.validator.Var(id, "required,uuid"); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.catalogService.GetPackageByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_package")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CatalogHandler) GetPackagesByAgent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	agentID := ctx.Params("agentId")
	if err := h.validator.Var(agentID, "required,max=64"); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.catalogService.GetPackagesByAgent(c, agentID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_packages_by_agent")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CatalogHandler) CreatePackage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req catalog.CreatePackageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id":     requestID,
		"agent_id":       userData.ID,
		"destination_id": req.DestinationID,
	}).Debug("Processing create package request")

	res, err := h.catalogService.CreatePackage(c, req, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_package")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}
