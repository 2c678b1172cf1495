package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for product records.
type Repository interface {
	Create(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, productID int64) (*models.Product, error)
	ListByStore(ctx context.Context, storeID int64) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, productID int64) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Create(product).Error
}

func (r *repository) Find(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).
		Where("id = ?", productID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) ListByStore(ctx context.Context, storeID int64) ([]models.Product, error) {
	var listing []models.Product
	if err := r.DB(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *repository) Update(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Save(product).Error
}

func (r *repository) Delete(ctx context.Context, productID int64) (int64, error) {
	result := r.DB(ctx).
		Where("id = ?", productID).
		Delete(&models.Product{})
	return result.RowsAffected, result.Error
}
