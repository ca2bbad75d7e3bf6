package catalogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Destinations: &destinationsRepository{q: sqlExecutor, log: r.log},
		Packages:     &packagesRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type DestinationStore interface {
	CreateDestination(ctx context.Context, destination entity.Destination) error
	GetDestinationByID(ctx context.Context, id string) (entity.Destination, error)
	GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]entity.Destination, error)
}

type PackageStore interface {
	CreatePackage(ctx context.Context, pkg entity.Package) error
	GetPackageByID(ctx context.Context, id string) (entity.Package, error)
	GetPackages(ctx context.Context, destinationID string) ([]entity.Package, error)
	GetPackagesByAgent(ctx context.Context, agentID string) ([]entity.Package, error)
}

type Client struct {
	Destinations DestinationStore
	Packages     PackageStore

	Commit   func() error
	Rollback func() error
}

type destinationsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type packagesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
