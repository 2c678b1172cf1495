package discounts

import (
	"context"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for discount markers.
type Repository interface {
	Create(ctx context.Context, discount *models.Discount) error
	Find(ctx context.Context, discountID int64) (*models.Discount, error)
	ListByStore(ctx context.Context, storeID int64) ([]models.Discount, error)
	Update(ctx context.Context, discount *models.Discount) error
	Delete(ctx context.Context, discountID int64) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a discounts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, discount *models.Discount) error {
	return r.DB(ctx).Create(discount).Error
}

func (r *repository) Find(ctx context.Context, discountID int64) (*models.Discount, error) {
	var discount models.Discount
	if err := r.DB(ctx).
		Where("id = ?", discountID).
		First(&discount).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *repository) ListByStore(ctx context.Context, storeID int64) ([]models.Discount, error) {
	var listing []models.Discount
	if err := r.DB(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *repository) Update(ctx context.Context, discount *models.Discount) error {
	return r.DB(ctx).Save(discount).Error
}

func (r *repository) Delete(ctx context.Context, discountID int64) (int64, error) {
	result := r.DB(ctx).
		Where("id = ?", discountID).
		Delete(&models.Discount{})
	return result.RowsAffected, result.Error
}
