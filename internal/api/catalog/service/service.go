package catalogService

import (
	"mime/multipart"

	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	catalogRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/repository"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/s3"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICatalogService interface {
	GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]catalog.DestinationResponse, error)
	GetDestinationByID(ctx context.Context, id string) (*catalog.DestinationResponse, error)
	CreateDestination(ctx context.Context, req catalog.CreateDestinationRequest, photo *multipart.FileHeader) (*catalog.DestinationResponse, error)

	GetPackages(ctx context.Context, destinationID string) ([]catalog.PackageResponse, error)
	GetPackageByID(ctx context.Context, id string) (*catalog.PackageResponse, error)
	GetPackagesByAgent(ctx context.Context, agentID string) ([]catalog.PackageResponse, error)
	CreatePackage(ctx context.Context, req catalog.CreatePackageRequest, agentID string) (*catalog.PackageResponse, error)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
	s3Client    s3.ItfS3
	utils       utils.IUtils
}

func NewCatalogService(
	log *logrus.Logger,
	cr catalogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: cr,
		s3Client:    s3Client,
		utils:       utils,
	}
}

// presign swaps a bucket URL for a temporary signed one. External URLs and
// signing failures leave the URL as stored.
func (s *catalogService) presign(ctx context.Context, url string) string {
	if !s3.IsBucketURL(url) {
		return url
	}

	signed, err := s.s3Client.PresignUrl(url)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"url":        url,
			"error":      err.Error(),
		}).Warn("Failed to presign image URL")
		return url
	}

	return signed
}
