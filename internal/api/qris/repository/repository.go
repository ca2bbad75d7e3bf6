package qrisRepository

import (
	"github.com/jmoiron/sqlx"
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
		Qris:     &qrisRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type QrisStore interface {
	CreateQris(ctx context.Context, qris entity.Qris) error
	GetQrisByID(ctx context.Context, id string) (entity.Qris, error)
	GetQrisByStaticString(ctx context.Context, staticQRIS string) (entity.Qris, error)
	GetLatestQris(ctx context.Context) (entity.Qris, error)
	GetAllQris(ctx context.Context) ([]entity.Qris, error)
	UpdateDynamicQris(ctx context.Context, id string, dynamicQRIS string) error
	DeleteQris(ctx context.Context, id string) error
}

type Client struct {
	Qris QrisStore

	Commit   func() error
	Rollback func() error
}

type qrisRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
