package qrisHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/handlerUtil"
	jwtPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/jwt"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/log"
	"golang.org/x/net/context"
)

// GeneratePayment issues a dynamic QRIS for the amount against the latest
// uploaded static code.
func (h *QrisHandler) GeneratePayment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req qrisapi.GeneratePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    userData.ID,
		"amount":     req.Amount,
	}).Info("Generating payment QRIS")

	res, err := h.qrisService.GeneratePayment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_payment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
