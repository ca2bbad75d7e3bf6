package qrisService

import (
	"errors"
	"fmt"
	"math"

	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/qris"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/redis"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var hundred = decimal.NewFromInt(100)

func (s *qrisService) GeneratePayment(ctx context.Context, req qrisapi.GeneratePaymentRequest) (*qrisapi.GeneratePaymentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !(req.Amount > 0) || math.IsInf(req.Amount, 0) {
		return nil, qrisapi.ErrInvalidAmount
	}

	record, err := s.latestQris(ctx)
	if err != nil {
		return nil, err
	}

	dynamicQRIS, err := qris.MakeDynamic(record.StaticQRISString, req.Amount, feeOf(record))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"qris_id":    record.ID,
			"error":      err.Error(),
		}).Warn("Stored QRIS cannot be made dynamic")
		return nil, qrisapi.ErrInvalidQRIS
	}
	if dynamicQRIS == record.StaticQRISString {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"qris_id":    record.ID,
		}).Warn("Stored QRIS has no country anchor, falling back to the static code")
	}

	suffix, err := s.utils.NewUUID()
	if err != nil {
		return nil, err
	}

	location, err := s.renderAndUpload(ctx, fmt.Sprintf("qris/dynamic_%s.png", suffix), dynamicQRIS)
	if err != nil {
		return nil, err
	}

	repo, err := s.qrisRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if err := repo.Qris.UpdateDynamicQris(ctx, record.ID, dynamicQRIS); err != nil {
		s.discardUpload(ctx, location)
		if errors.Is(err, qrisapi.ErrQRISNotFound) {
			s.invalidateLatest(ctx)
			return nil, qrisapi.ErrNoQRISUploaded
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"qris_id":    record.ID,
			"error":      err.Error(),
		}).Error("Failed to store dynamic QRIS")
		return nil, qrisapi.ErrUpdateDynamicQRIS
	}

	if err := repo.Commit(); err != nil {
		s.discardUpload(ctx, location)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, qrisapi.ErrUpdateDynamicQRIS
	}

	response := &qrisapi.GeneratePaymentResponse{
		QrisID:            record.ID,
		StaticQRISString:  record.StaticQRISString,
		DynamicQRISString: dynamicQRIS,
		Amount:            req.Amount,
		FeeValue:          record.FeeValue,
		TotalAmount:       TotalAmount(req.Amount, record.FeeType, record.FeeValue),
		FotoQRURL:         s.presign(ctx, location),
		CreatedAt:         record.CreatedAt,
		Message:           "Dynamic QRIS generated. Open foto_qr_url or scan it to pay.",
	}
	if record.FeeType != nil {
		feeType := string(*record.FeeType)
		response.FeeType = &feeType
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"qris_id":      record.ID,
		"amount":       req.Amount,
		"total_amount": response.TotalAmount,
	}).Info("Payment QRIS generated")

	return response, nil
}

// latestEntry is the cached form of the newest record, stamped with the
// generation that was current before the record was read.
type latestEntry struct {
	Generation int64       `json:"generation"`
	Record     entity.Qris `json:"record"`
}

// latestQris reads the newest record from the cache, falling back to the
// database. The cache is only used when the generation counter is readable,
// and a fill is stamped with the generation seen before the database read so
// an invalidation that lands in between makes the fill stale.
func (s *qrisService) latestQris(ctx context.Context) (entity.Qris, error) {
	requestID := contextPkg.GetRequestID(ctx)

	generation, genErr := s.redisClient.GetInt(ctx, LatestQrisGenerationKey)
	if genErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      genErr.Error(),
		}).Warn("Latest QRIS cache unavailable")
	} else {
		var cached latestEntry
		err := s.redisClient.GetJSON(ctx, LatestQrisCacheKey, &cached)
		if err == nil && cached.Record.ID != "" && cached.Generation == generation {
			return cached.Record, nil
		}
		if err != nil && !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Latest QRIS cache unreadable")
		}
	}

	repo, err := s.qrisRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Qris{}, err
	}

	record, err := repo.Qris.GetLatestQris(ctx)
	if err != nil {
		if !errors.Is(err, qrisapi.ErrNoQRISUploaded) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get latest QRIS")
		}
		return entity.Qris{}, err
	}

	if genErr == nil {
		s.cacheLatest(ctx, latestEntry{Generation: generation, Record: record})
	}

	return record, nil
}

func (s *qrisService) cacheLatest(ctx context.Context, entry latestEntry) {
	if err := s.redisClient.SetJSON(ctx, LatestQrisCacheKey, entry, s.cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to cache latest QRIS")
	}
}

func feeOf(record entity.Qris) *qris.Fee {
	if record.FeeType == nil || record.FeeValue == nil {
		return nil
	}
	return qris.NewFee(string(*record.FeeType), record.FeeValue)
}

// TotalAmount is what the payer is charged: the amount plus a flat rupiah fee,
// or plus feeValue percent of the amount.
func TotalAmount(amount float64, feeType *entity.FeeType, feeValue *float64) float64 {
	if feeType == nil || feeValue == nil || *feeValue == 0 {
		return amount
	}

	total := decimal.NewFromFloat(amount)
	fee := decimal.NewFromFloat(*feeValue)
	switch *feeType {
	case entity.FeeTypeRupiah:
		total = total.Add(fee)
	case entity.FeeTypePercentage:
		total = total.Add(total.Mul(fee).Div(hundred))
	}

	result, _ := total.Float64()
	return result
}
