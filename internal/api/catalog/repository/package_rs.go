package catalogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/sirupsen/logrus"
)

const foreignKeyViolation = "23503"

type PackageDB struct {
	ID              sql.NullString  `db:"id"`
	AgentID         sql.NullString  `db:"agent_id"`
	DestinationID   sql.NullString  `db:"destination_id"`
	DestinationName sql.NullString  `db:"destination_name"`
	Name            sql.NullString  `db:"name"`
	Duration        sql.NullInt64   `db:"duration"`
	Price           sql.NullFloat64 `db:"price"`
	Itinerary       sql.NullString  `db:"itinerary"`
	MaxTravelers    sql.NullInt64   `db:"max_travelers"`
	ContactPhone    sql.NullString  `db:"contact_phone"`
	Images          pq.StringArray  `db:"images"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r *packagesRepository) CreatePackage(ctx context.Context, pkg entity.Package) error {
	requestID := contextPkg.GetRequestID(ctx)

	images := pkg.Images
	if images == nil {
		images = []string{}
	}

	argsKV := map[string]interface{}{
		"id":             pkg.ID,
		"agent_id":       pkg.AgentID,
		"destination_id": pkg.DestinationID,
		"name":           pkg.Name,
		"duration":       pkg.Duration,
		"price":          pkg.Price,
		"itinerary":      pkg.Itinerary,
		"max_travelers":  pkg.MaxTravelers,
		"contact_phone":  pkg.ContactPhone,
		"images":         pq.StringArray(images),
		"created_at":     pkg.CreatedAt,
		"updated_at":     pkg.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePackage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePackage")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"destination_id": pkg.DestinationID,
			}).Warn("CreatePackage destination vanished")
			return catalog.ErrDestinationNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating package")
		return err
	}

	return nil
}

func (r *packagesRepository) GetPackageByID(ctx context.Context, id string) (entity.Package, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row PackageDB

	query, args, err := sqlx.Named(queryGetPackageByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPackageByID named query preparation err")
		return entity.Package{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetPackageByID no rows found")
			return entity.Package{}, catalog.ErrPackageNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPackageByID execution err")
		return entity.Package{}, err
	}

	return makePackage(row), nil
}

func (r *packagesRepository) GetPackages(ctx context.Context, destinationID string) ([]entity.Package, error) {
	return r.list(ctx, "GetPackages", queryGetPackages, map[string]interface{}{"destination_id": destinationID})
}

func (r *packagesRepository) GetPackagesByAgent(ctx context.Context, agentID string) ([]entity.Package, error) {
	return r.list(ctx, "GetPackagesByAgent", queryGetPackagesByAgent, map[string]interface{}{"agent_id": agentID})
}

func (r *packagesRepository) list(ctx context.Context, op, namedQuery string, argsKV map[string]interface{}) ([]entity.Package, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PackageDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	packages := make([]entity.Package, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, makePackage(row))
	}

	return packages, nil
}

func makePackage(row PackageDB) entity.Package {
	images := []string(row.Images)
	if images == nil {
		images = []string{}
	}

	return entity.Package{
		ID:              row.ID.String,
		AgentID:         row.AgentID.String,
		DestinationID:   row.DestinationID.String,
		DestinationName: row.DestinationName.String,
		Name:            row.Name.String,
		Duration:        int(row.Duration.Int64),
		Price:           row.Price.Float64,
		Itinerary:       row.Itinerary.String,
		MaxTravelers:    int(row.MaxTravelers.Int64),
		ContactPhone:    row.ContactPhone.String,
		Images:          images,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
