package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for customer records and their enrollment
// credits.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) error
	Find(ctx context.Context, customerID int64) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, customerID int64) (int64, error)
	CreateSignUp(ctx context.Context, signUp *models.CustomerSignUp) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a customers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.DB(ctx).Create(customer).Error
}

func (r *repository) Find(ctx context.Context, customerID int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB(ctx).
		Where("id = ?", customerID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) Update(ctx context.Context, customer *models.Customer) error {
	return r.DB(ctx).Save(customer).Error
}

func (r *repository) Delete(ctx context.Context, customerID int64) (int64, error) {
	result := r.DB(ctx).
		Where("id = ?", customerID).
		Delete(&models.Customer{})
	return result.RowsAffected, result.Error
}

func (r *repository) CreateSignUp(ctx context.Context, signUp *models.CustomerSignUp) error {
	return r.DB(ctx).Create(signUp).Error
}
