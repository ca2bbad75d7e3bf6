package catalogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/catalog"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/sirupsen/logrus"
)

type DestinationDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Country     sql.NullString `db:"country"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *destinationsRepository) CreateDestination(ctx context.Context, destination entity.Destination) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          destination.ID,
		"name":        destination.Name,
		"description": destination.Description,
		"photo_url":   sql.NullString{String: destination.PhotoURL, Valid: destination.PhotoURL != ""},
		"country":     destination.Country,
		"created_at":  destination.CreatedAt,
		"updated_at":  destination.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateDestination, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateDestination")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating destination")
		return err
	}

	return nil
}

func (r *destinationsRepository) GetDestinationByID(ctx context.Context, id string) (entity.Destination, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row DestinationDB

	query, args, err := sqlx.Named(queryGetDestinationByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDestinationByID named query preparation err")
		return entity.Destination{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetDestinationByID no rows found")
			return entity.Destination{}, catalog.ErrDestinationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDestinationByID execution err")
		return entity.Destination{}, err
	}

	return makeDestination(row), nil
}

func (r *destinationsRepository) GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]entity.Destination, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []DestinationDB

	argsKV := map[string]interface{}{
		"country": filter.Country,
		"name":    filter.Name,
	}

	query, args, err := sqlx.Named(queryGetDestinations, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDestinations named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDestinations execution err")
		return nil, err
	}

	destinations := make([]entity.Destination, 0, len(rows))
	for _, row := range rows {
		destinations = append(destinations, makeDestination(row))
	}

	return destinations, nil
}

func makeDestination(row DestinationDB) entity.Destination {
	return entity.Destination{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Description: row.Description.String,
		PhotoURL:    row.PhotoURL.String,
		Country:     row.Country.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
