package rewards

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository runs the lookups behind the rewards menu.
type Repository interface {
	FindCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	CountSignUps(ctx context.Context, staffID int64, from, to *time.Time) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a rewards repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) FindCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB(ctx).
		Where("id = ?", customerID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountSignUps counts enrollment credits for a staff member, optionally
// constrained to the half-open window [from, to).
func (r *repository) CountSignUps(ctx context.Context, staffID int64, from, to *time.Time) (int64, error) {
	query := r.DB(ctx).
		Model(&models.CustomerSignUp{}).
		Where("sign_up_staff_id = ?", staffID)
	if from != nil && to != nil {
		query = query.Where("sign_up_date >= ? AND sign_up_date < ?", *from, *to)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
