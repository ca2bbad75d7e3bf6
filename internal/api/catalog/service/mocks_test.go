package catalogService

import (
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	catalogRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog/repository"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"golang.org/x/net/context"
)

type mockDestinationStore struct {
	mock.Mock
}

func (m *mockDestinationStore) CreateDestination(ctx context.Context, destination entity.Destination) error {
	return m.Called(ctx, destination).Error(0)
}

func (m *mockDestinationStore) GetDestinationByID(ctx context.Context, id string) (entity.Destination, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Destination), args.Error(1)
}

func (m *mockDestinationStore) GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]entity.Destination, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.Destination), args.Error(1)
}

type mockPackageStore struct {
	mock.Mock
}

func (m *mockPackageStore) CreatePackage(ctx context.Context, pkg entity.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockPackageStore) GetPackageByID(ctx context.Context, id string) (entity.Package, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Package), args.Error(1)
}

func (m *mockPackageStore) GetPackages(ctx context.Context, destinationID string) ([]entity.Package, error) {
	args := m.Called(ctx, destinationID)
	return args.Get(0).([]entity.Package), args.Error(1)
}

func (m *mockPackageStore) GetPackagesByAgent(ctx context.Context, agentID string) ([]entity.Package, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]entity.Package), args.Error(1)
}

type fakeRepository struct {
	destinations *mockDestinationStore
	packages     *mockPackageStore
	commits      int
	rollbacks    int
}

func (r *fakeRepository) NewClient(tx bool) (catalogRepository.Client, error) {
	return catalogRepository.Client{
		Destinations: r.destinations,
		Packages:     r.packages,
		Commit: func() error {
			r.commits++
			return nil
		},
		Rollback: func() error {
			r.rollbacks++
			return nil
		},
	}, nil
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	args := m.Called(folder, file)
	return args.String(0), args.Error(1)
}

func (m *mockS3) UploadBytes(key string, contentType string, data []byte) (string, error) {
	args := m.Called(key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *mockS3) PresignUrl(fileUrl string) (string, error) {
	args := m.Called(fileUrl)
	return args.String(0), args.Error(1)
}

func (m *mockS3) DeleteFile(fileUrl string) error {
	return m.Called(fileUrl).Error(0)
}

type fixture struct {
	svc          ICatalogService
	repo         *fakeRepository
	destinations *mockDestinationStore
	packages     *mockPackageStore
	s3           *mockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	destinations := &mockDestinationStore{}
	packages := &mockPackageStore{}
	repo := &fakeRepository{destinations: destinations, packages: packages}
	s3Client := &mockS3{}

	t.Cleanup(func() {
		destinations.AssertExpectations(t)
		packages.AssertExpectations(t)
		s3Client.AssertExpectations(t)
	})

	return fixture{
		svc:          NewCatalogService(logger, repo, s3Client, utils.New()),
		repo:         repo,
		destinations: destinations,
		packages:     packages,
		s3:           s3Client,
	}
}

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
	}
}
