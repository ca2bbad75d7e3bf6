package qrisService

import (
	"errors"
	"fmt"
	"strings"
	"time"

	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/qrcode"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const pngContentType = "image/png"

func (s *qrisService) CreateQris(ctx context.Context, req qrisapi.CreateQRISRequest) (*qrisapi.QRISResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	staticQRIS := strings.TrimSpace(req.StaticQRISString)
	if staticQRIS == "" {
		return nil, qrisapi.ErrInvalidQRIS
	}

	var feeType *entity.FeeType
	if req.FeeType != "" {
		ft := entity.FeeType(req.FeeType)
		feeType = &ft
	}
	if req.FeeValue != nil && feeType == nil {
		return nil, qrisapi.ErrInvalidFee
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

	_, err = repo.Qris.GetQrisByStaticString(ctx, staticQRIS)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("QRIS string already uploaded")
		return nil, qrisapi.ErrQRISAlreadyExists
	}
	if !errors.Is(err, qrisapi.ErrQRISNotFound) {
		return nil, err
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate QRIS id")
		return nil, err
	}

	fotoURL, err := s.renderAndUpload(ctx, fmt.Sprintf("qris/static_%s.png", id), staticQRIS)
	if err != nil {
		return nil, err
	}

	record := entity.Qris{
		ID:                id,
		FotoQRPath:        fotoURL,
		StaticQRISString:  staticQRIS,
		DynamicQRISString: staticQRIS,
		FeeType:           feeType,
		FeeValue:          req.FeeValue,
		CreatedAt:         time.Now(),
	}

	if err := repo.Qris.CreateQris(ctx, record); err != nil {
		s.discardUpload(ctx, fotoURL)
		if errors.Is(err, qrisapi.ErrQRISAlreadyExists) {
			return nil, err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create QRIS")
		return nil, qrisapi.ErrCreateQRIS
	}

	if err := repo.Commit(); err != nil {
		s.discardUpload(ctx, fotoURL)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, qrisapi.ErrCreateQRIS
	}

	s.invalidateLatest(ctx)

	response := toQRISResponse(record)
	response.Message = "QRIS uploaded and stored as a clean QR code"

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"qris_id":    id,
	}).Info("QRIS created")

	return &response, nil
}

func (s *qrisService) GetAllQris(ctx context.Context) (*qrisapi.QRISListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.qrisRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	records, err := repo.Qris.GetAllQris(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get QRIS list")
		return nil, err
	}

	response := &qrisapi.QRISListResponse{
		Data:  make([]qrisapi.QRISResponse, 0, len(records)),
		Total: len(records),
	}
	for _, record := range records {
		record.FotoQRPath = s.presign(ctx, record.FotoQRPath)
		response.Data = append(response.Data, toQRISResponse(record))
	}

	return response, nil
}

func (s *qrisService) GetQrisByID(ctx context.Context, id string) (*qrisapi.QRISResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.qrisRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	record, err := repo.Qris.GetQrisByID(ctx, id)
	if err != nil {
		if errors.Is(err, qrisapi.ErrQRISNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("QRIS not found")
		}
		return nil, err
	}

	record.FotoQRPath = s.presign(ctx, record.FotoQRPath)
	response := toQRISResponse(record)

	return &response, nil
}

func (s *qrisService) DeleteQris(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.qrisRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	record, err := repo.Qris.GetQrisByID(ctx, id)
	if err != nil {
		return err
	}

	if err := repo.Qris.DeleteQris(ctx, id); err != nil {
		if errors.Is(err, qrisapi.ErrQRISNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete QRIS")
		return qrisapi.ErrDeleteQRIS
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return qrisapi.ErrDeleteQRIS
	}

	s.invalidateLatest(ctx)
	s.discardUpload(ctx, record.FotoQRPath)

	return nil
}

// renderAndUpload stores a PNG of content under key and returns its location.
func (s *qrisService) renderAndUpload(ctx context.Context, key, content string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	png, err := qrcode.Render(content, qrcode.DefaultSize)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render QR code")
		return "", qrisapi.ErrRenderQRCode
	}

	location, err := s.s3Client.UploadBytes(key, pngContentType, png)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Failed to upload QR code")
		return "", qrisapi.ErrFailedToUploadQR
	}

	return location, nil
}

func (s *qrisService) discardUpload(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := s.s3Client.DeleteFile(location); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"location":   location,
			"error":      err.Error(),
		}).Warn("Failed to delete QR code object")
	}
}

func (s *qrisService) presign(ctx context.Context, location string) string {
	if location == "" {
		return location
	}

	presigned, err := s.s3Client.PresignUrl(location)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"location":   location,
			"error":      err.Error(),
		}).Warn("Failed to create presigned URL for QR code")
		return location
	}

	return presigned
}

// invalidateLatest must run after the change is committed, so a reader that
// sees the new generation also sees the new rows.
func (s *qrisService) invalidateLatest(ctx context.Context) {
	if _, err := s.redisClient.Incr(ctx, LatestQrisGenerationKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to bump latest QRIS generation")
	}
	if err := s.redisClient.Delete(ctx, LatestQrisCacheKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to invalidate latest QRIS cache")
	}
}

func toQRISResponse(record entity.Qris) qrisapi.QRISResponse {
	response := qrisapi.QRISResponse{
		ID:                record.ID,
		StaticQRISString:  record.StaticQRISString,
		DynamicQRISString: record.DynamicQRISString,
		FotoQRPath:        record.FotoQRPath,
		FeeValue:          record.FeeValue,
		CreatedAt:         record.CreatedAt,
	}

	if record.FeeType != nil {
		feeType := string(*record.FeeType)
		response.FeeType = &feeType
	}

	return response
}
