package catalogService

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const destinationPhotoFolder = "destinations"

func (s *catalogService) GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]catalog.DestinationResponse, error) {
	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	filter.Country = strings.TrimSpace(filter.Country)
	filter.Name = strings.TrimSpace(filter.Name)

	destinations, err := repo.Destinations.GetDestinations(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]catalog.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		result = append(result, s.toDestinationResponse(ctx, d))
	}

	return result, nil
}

func (s *catalogService) GetDestinationByID(ctx context.Context, id string) (*catalog.DestinationResponse, error) {
	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	destination, err := repo.Destinations.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.toDestinationResponse(ctx, destination)
	return &res, nil
}

// CreateDestination stores a destination. An uploaded photo takes precedence
// over a photo_url given in the request.
func (s *catalogService) CreateDestination(ctx context.Context, req catalog.CreateDestinationRequest, photo *multipart.FileHeader) (*catalog.DestinationResponse, error) {
	photoURL := req.PhotoURL

	if photo != nil {
		if err := s.utils.ValidateImageFile(photo); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"filename":   photo.Filename,
				"error":      err.Error(),
			}).Warn("Rejected destination photo")
			return nil, err
		}

		location, err := s.s3Client.UploadFile(destinationPhotoFolder, photo)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Error("Failed to upload destination photo")
			return nil, catalog.ErrFailedToUpload
		}
		photoURL = location
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	destination := entity.Destination{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PhotoURL:    photoURL,
		Country:     strings.TrimSpace(req.Country),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	if err := repo.Destinations.CreateDestination(ctx, destination); err != nil {
		if photo != nil {
			if delErr := s.s3Client.DeleteFile(photoURL); delErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": contextPkg.GetRequestID(ctx),
					"error":      delErr.Error(),
				}).Warn("Failed to delete orphaned destination photo")
			}
		}
		return nil, catalog.ErrCreateDestination
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     contextPkg.GetRequestID(ctx),
		"destination_id": id,
	}).Info("Destination created")

	res := s.toDestinationResponse(ctx, destination)
	return &res, nil
}

func (s *catalogService) toDestinationResponse(ctx context.Context, d entity.Destination) catalog.DestinationResponse {
	res := catalog.DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Country:     d.Country,
		CreatedAt:   d.CreatedAt,
	}

	if d.PhotoURL != "" {
		url := s.presign(ctx, d.PhotoURL)
		res.PhotoURL = &url
	}

	return res
}
