package catalogService

import (
	"errors"
	"strings"
	"time"

	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *catalogService) GetPackages(ctx context.Context, destinationID string) ([]catalog.PackageResponse, error) {
	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	packages, err := repo.Packages.GetPackages(ctx, strings.TrimSpace(destinationID))
	if err != nil {
		return nil, err
	}

	return s.toPackageResponses(ctx, packages), nil
}

func (s *catalogService) GetPackageByID(ctx context.Context, id string) (*catalog.PackageResponse, error) {
	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	pkg, err := repo.Packages.GetPackageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.toPackageResponse(ctx, pkg)
	return &res, nil
}

func (s *catalogService) GetPackagesByAgent(ctx context.Context, agentID string) ([]catalog.PackageResponse, error) {
	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	packages, err := repo.Packages.GetPackagesByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	return s.toPackageResponses(ctx, packages), nil
}

// CreatePackage lists a package for agentID under an existing destination.
func (s *catalogService) CreatePackage(ctx context.Context, req catalog.CreatePackageRequest, agentID string) (*catalog.PackageResponse, error) {
	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	destination, err := repo.Destinations.GetDestinationByID(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		return nil, err
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	pkg := entity.Package{
		ID:              id,
		AgentID:         agentID,
		DestinationID:   destination.ID,
		DestinationName: destination.Name,
		Name:            strings.TrimSpace(req.Name),
		Duration:        req.Duration,
		Price:           req.Price,
		Itinerary:       req.Itinerary,
		MaxTravelers:    req.MaxTravelers,
		ContactPhone:    strings.TrimSpace(req.ContactPhone),
		Images:          images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Packages.CreatePackage(ctx, pkg); err != nil {
		if errors.Is(err, catalog.ErrDestinationNotFound) {
			return nil, err
		}
		return nil, catalog.ErrCreatePackage
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to commit package")
		return nil, catalog.ErrCreatePackage
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     contextPkg.GetRequestID(ctx),
		"package_id":     id,
		"agent_id":       agentID,
		"destination_id": destination.ID,
	}).Info("Package created")

	res := s.toPackageResponse(ctx, pkg)
	return &res, nil
}

func (s *catalogService) toPackageResponses(ctx context.Context, packages []entity.Package) []catalog.PackageResponse {
	result := make([]catalog.PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, s.toPackageResponse(ctx, p))
	}
	return result
}

func (s *catalogService) toPackageResponse(ctx context.Context, p entity.Package) catalog.PackageResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, s.presign(ctx, img))
	}

	return catalog.PackageResponse{
		ID:              p.ID,
		AgentID:         p.AgentID,
		DestinationID:   p.DestinationID,
		DestinationName: p.DestinationName,
		Name:            p.Name,
		Duration:        p.Duration,
		Price:           p.Price,
		Itinerary:       p.Itinerary,
		MaxTravelers:    p.MaxTravelers,
		ContactPhone:    p.ContactPhone,
		Images:          images,
		CreatedAt:       p.CreatedAt,
	}
}
