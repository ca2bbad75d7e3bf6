package qrisRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qrisapi "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	contextPkg "github.com/muhamyusuf/uas-paw-kelompok-6/pkg/context"
	"github.com/sirupsen/logrus"
)

const uniqueViolation = "23505"

type QrisDB struct {
	ID                sql.NullString  `db:"id"`
	FotoQRPath        sql.NullString  `db:"foto_qr_path"`
	StaticQRISString  sql.NullString  `db:"static_qris_string"`
	DynamicQRISString sql.NullString  `db:"dynamic_qris_string"`
	FeeType           sql.NullString  `db:"fee_type"`
	FeeValue          sql.NullFloat64 `db:"fee_value"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (r *qrisRepository) CreateQris(ctx context.Context, qris entity.Qris) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":                  qris.ID,
		"foto_qr_path":        qris.FotoQRPath,
		"static_qris_string":  qris.StaticQRISString,
		"dynamic_qris_string": qris.DynamicQRISString,
		"fee_type":            nullableFeeType(qris.FeeType),
		"fee_value":           nullableFloat(qris.FeeValue),
		"created_at":          qris.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateQris, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateQris")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"constraint": pqErr.Constraint,
			}).Warn("CreateQris duplicate static qris")
			return qrisapi.ErrQRISAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating qris")
		return err
	}

	return nil
}

func (r *qrisRepository) GetQrisByID(ctx context.Context, id string) (entity.Qris, error) {
	return r.getOne(ctx, "GetQrisByID", queryGetQrisByID, map[string]interface{}{"id": id}, qrisapi.ErrQRISNotFound)
}

func (r *qrisRepository) GetQrisByStaticString(ctx context.Context, staticQRIS string) (entity.Qris, error) {
	return r.getOne(ctx, "GetQrisByStaticString", queryGetQrisByStaticString,
		map[string]interface{}{"static_qris_string": staticQRIS}, qrisapi.ErrQRISNotFound)
}

func (r *qrisRepository) GetLatestQris(ctx context.Context) (entity.Qris, error) {
	return r.getOne(ctx, "GetLatestQris", queryGetLatestQris, map[string]interface{}{}, qrisapi.ErrNoQRISUploaded)
}

func (r *qrisRepository) getOne(ctx context.Context, op, namedQuery string, argsKV map[string]interface{}, notFound error) (entity.Qris, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row QrisDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Qris{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug(op + " no rows found")
			return entity.Qris{}, notFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Qris{}, err
	}

	return makeQris(row), nil
}

func (r *qrisRepository) GetAllQris(ctx context.Context) ([]entity.Qris, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []QrisDB

	query, args, err := sqlx.Named(queryGetAllQris, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllQris named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllQris execution err")
		return nil, err
	}

	result := make([]entity.Qris, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeQris(row))
	}

	return result, nil
}

func (r *qrisRepository) UpdateDynamicQris(ctx context.Context, id string, dynamicQRIS string) error {
	return r.execAffectingOne(ctx, "UpdateDynamicQris", queryUpdateDynamicQris, map[string]interface{}{
		"id":                  id,
		"dynamic_qris_string": dynamicQRIS,
	})
}

func (r *qrisRepository) DeleteQris(ctx context.Context, id string) error {
	return r.execAffectingOne(ctx, "DeleteQris", queryDeleteQris, map[string]interface{}{"id": id})
}

// execAffectingOne runs a write keyed by id and reports ErrQRISNotFound when no
// row matched.
func (r *qrisRepository) execAffectingOne(ctx context.Context, op, namedQuery string, argsKV map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return qrisapi.ErrQRISNotFound
	}

	return nil
}

func makeQris(row QrisDB) entity.Qris {
	qris := entity.Qris{
		ID:                row.ID.String,
		FotoQRPath:        row.FotoQRPath.String,
		StaticQRISString:  row.StaticQRISString.String,
		DynamicQRISString: row.DynamicQRISString.String,
		CreatedAt:         row.CreatedAt,
	}

	if row.FeeType.Valid {
		feeType := entity.FeeType(row.FeeType.String)
		qris.FeeType = &feeType
	}
	if row.FeeValue.Valid {
		feeValue := row.FeeValue.Float64
		qris.FeeValue = &feeValue
	}

	return qris
}

func nullableFeeType(feeType *entity.FeeType) interface{} {
	if feeType == nil {
		return nil
	}
	return string(*feeType)
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
