package discounts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/validate"
)

// DiscountInput marks a product as discounted at a store; the same shape
// backs create and the original's read-modify-write update.
type DiscountInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	StoreID   int64 `json:"store_id" validate:"required,gt=0"`
}

// Service defines discount marker CRUD operations.
type Service interface {
	CreateDiscount(ctx context.Context, input DiscountInput) (*models.Discount, error)
	GetDiscount(ctx context.Context, discountID int64) (*models.Discount, error)
	ListDiscountsByStore(ctx context.Context, storeID int64) ([]models.Discount, error)
	UpdateDiscount(ctx context.Context, discountID int64, input DiscountInput) (*models.Discount, error)
	DeleteDiscount(ctx context.Context, discountID int64) error
}

type service struct {
	repo Repository
}

// NewService wires a discounts service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("discounts repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateDiscount(ctx context.Context, input DiscountInput) (*models.Discount, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	discount := &models.Discount{
		ProductID: input.ProductID,
		StoreID:   input.StoreID,
	}
	if err := s.repo.Create(ctx, discount); err != nil {
		return nil, mapStoreError(err, "create discount")
	}
	return discount, nil
}

func (s *service) GetDiscount(ctx context.Context, discountID int64) (*models.Discount, error) {
	if discountID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount id required")
	}
	discount, err := s.repo.Find(ctx, discountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("discount %d not found", discountID))
		}
		return nil, mapStoreError(err, "load discount")
	}
	return discount, nil
}

func (s *service) ListDiscountsByStore(ctx context.Context, storeID int64) ([]models.Discount, error) {
	if storeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	listing, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err, "list discounts")
	}
	return listing, nil
}

func (s *service) UpdateDiscount(ctx context.Context, discountID int64, input DiscountInput) (*models.Discount, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	discount, err := s.GetDiscount(ctx, discountID)
	if err != nil {
		return nil, err
	}

	discount.ProductID = input.ProductID
	discount.StoreID = input.StoreID
	if err := s.repo.Update(ctx, discount); err != nil {
		return nil, mapStoreError(err, "update discount")
	}
	return discount, nil
}

func (s *service) DeleteDiscount(ctx context.Context, discountID int64) error {
	if discountID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount id required")
	}
	affected, err := s.repo.Delete(ctx, discountID)
	if err != nil {
		return mapStoreError(err, "delete discount")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("discount %d not found", discountID))
	}
	return nil
}

func mapStoreError(err error, operation string) error {
	switch {
	case db.IsForeignKeyViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeReference, err, operation)
	case db.IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, operation)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, operation)
	}
}
