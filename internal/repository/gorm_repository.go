package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// document constrains T so that *T carries the Base methods.
type document[T any] interface {
	*T
	entity.Document
}

type gormRepository[T any, PT document[T]] struct {
	db *gorm.DB
}

func (r *gormRepository[T, PT]) Create(ctx context.Context, e *T) error {
	PT(e).Stamp(time.Now())
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *gormRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, "")
}

func (r *gormRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *gormRepository[T, PT]) Update(ctx context.Context, e *T) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *gormRepository[T, PT]) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}

// find lists rows newest first, optionally filtered by a where clause.
func (r *gormRepository[T, PT]) find(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	rows := []T{}
	db := r.db.WithContext(ctx)
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// translateError maps a PostgreSQL unique_violation (SQLSTATE 23505) to
// ErrDuplicateKey.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", domainRepo.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}
