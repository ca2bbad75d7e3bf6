package qrisService

import (
	"errors"
	"strings"

	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/qrcode"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/qris"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *qrisService) PreviewQris(ctx context.Context, req qrisapi.PreviewRequest) (*qrisapi.PreviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var amount float64
	if req.JumlahBayar != nil {
		amount = *req.JumlahBayar
	}

	dynamicQRIS, err := qris.MakeDynamic(strings.TrimSpace(req.StaticQRISString), amount, qris.NewFee(req.FeeType, req.FeeValue))
	if err != nil {
		if errors.Is(err, qris.ErrInvalidInput) {
			return nil, qrisapi.ErrInvalidQRIS
		}
		return nil, err
	}

	base64QR, err := qrcode.RenderBase64(dynamicQRIS, qrcode.DefaultSize)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render preview QR code")
		return nil, qrisapi.ErrRenderQRCode
	}

	return &qrisapi.PreviewResponse{
		DynamicQRISString: dynamicQRIS,
		Base64QR:          base64QR,
	}, nil
}

func (s *qrisService) DecodeQris(ctx context.Context, req qrisapi.DecodeRequest) (*qrisapi.DecodeResponse, error) {
	result := qris.Decode(strings.TrimSpace(req.QRContent))

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"valid":      result.Valid,
		"is_dynamic": result.IsDynamic,
	}).Debug("QRIS decoded")

	return &qrisapi.DecodeResponse{
		Result:      result,
		PaymentType: paymentType(result),
	}, nil
}

func paymentType(result qris.Result) string {
	switch {
	case result.IsDynamic:
		return qrisapi.PaymentTypeDynamic
	case result.IsStatic:
		return qrisapi.PaymentTypeStatic
	default:
		return qrisapi.PaymentTypeUnknown
	}
}
