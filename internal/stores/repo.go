package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for store records.
type Repository interface {
	Create(ctx context.Context, store *models.Store) error
	Find(ctx context.Context, storeID int64) (*models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, storeID int64) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a stores repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, store *models.Store) error {
	return r.DB(ctx).Create(store).Error
}

func (r *repository) Find(ctx context.Context, storeID int64) (*models.Store, error) {
	var store models.Store
	if err := r.DB(ctx).
		Where("id = ?", storeID).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *repository) Update(ctx context.Context, store *models.Store) error {
	return r.DB(ctx).Save(store).Error
}

func (r *repository) Delete(ctx context.Context, storeID int64) (int64, error) {
	result := r.DB(ctx).
		Where("id = ?", storeID).
		Delete(&models.Store{})
	return result.RowsAffected, result.Error
}
