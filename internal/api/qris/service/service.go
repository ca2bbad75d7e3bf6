package qrisService

import (
	"time"

	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	qrisRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/repository"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/redis"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/s3"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// LatestQrisCacheKey holds the most recently uploaded record, the one payments
// are generated from.
const LatestQrisCacheKey = "qris:latest"

// LatestQrisGenerationKey is bumped whenever the set of records changes. A
// cached latest record is only trusted while its generation is current.
const LatestQrisGenerationKey = "qris:latest:generation"

type IQrisService interface {
	CreateQris(ctx context.Context, req qrisapi.CreateQRISRequest) (*qrisapi.QRISResponse, error)
	GetAllQris(ctx context.Context) (*qrisapi.QRISListResponse, error)
	GetQrisByID(ctx context.Context, id string) (*qrisapi.QRISResponse, error)
	DeleteQris(ctx context.Context, id string) error
	PreviewQris(ctx context.Context, req qrisapi.PreviewRequest) (*qrisapi.PreviewResponse, error)
	DecodeQris(ctx context.Context, req qrisapi.DecodeRequest) (*qrisapi.DecodeResponse, error)
	GeneratePayment(ctx context.Context, req qrisapi.GeneratePaymentRequest) (*qrisapi.GeneratePaymentResponse, error)
}

type qrisService struct {
	log         *logrus.Logger
	qrisRepo    qrisRepository.Repository
	s3Client    s3.ItfS3
	redisClient redis.IRedis
	utils       utils.IUtils
	cacheTTL    time.Duration
}

func NewQrisService(
	log *logrus.Logger,
	qr qrisRepository.Repository,
	s3Client s3.ItfS3,
	redisClient redis.IRedis,
	utils utils.IUtils,
	cacheTTL time.Duration,
) IQrisService {
	return &qrisService{
		log:         log,
		qrisRepo:    qr,
		s3Client:    s3Client,
		redisClient: redisClient,
		utils:       utils,
		cacheTTL:    cacheTTL,
	}
}
