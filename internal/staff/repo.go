package staff

import (
	"context"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for staff records.
type Repository interface {
	Create(ctx context.Context, member *models.Staff) error
	Find(ctx context.Context, staffID int64) (*models.Staff, error)
	ListByStore(ctx context.Context, storeID int64) ([]models.Staff, error)
	Update(ctx context.Context, member *models.Staff) error
	Delete(ctx context.Context, staffID int64) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a staff repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, member *models.Staff) error {
	return r.DB(ctx).Create(member).Error
}

func (r *repository) Find(ctx context.Context, staffID int64) (*models.Staff, error) {
	var member models.Staff
	if err := r.DB(ctx).
		Where("id = ?", staffID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *repository) ListByStore(ctx context.Context, storeID int64) ([]models.Staff, error) {
	var listing []models.Staff
	if err := r.DB(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *repository) Update(ctx context.Context, member *models.Staff) error {
	return r.DB(ctx).Save(member).Error
}

func (r *repository) Delete(ctx context.Context, staffID int64) (int64, error) {
	result := r.DB(ctx).
		Where("id = ?", staffID).
		Delete(&models.Staff{})
	return result.RowsAffected, result.Error
}
