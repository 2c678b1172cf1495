package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/validate"
)

// ProductInput carries the full set of product fields; the same shape backs
// create and the original's read-modify-write update.
type ProductInput struct {
	Name            string          `json:"name" validate:"required"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"gte=0"`
	BuyPrice        decimal.Decimal `json:"buy_price"`
	SellPrice       decimal.Decimal `json:"sell_price"`
	StoreID         int64           `json:"store_id" validate:"required,gt=0"`
}

// Service defines product-level CRUD operations.
type Service interface {
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, productID int64) (*models.Product, error)
	ListProductsByStore(ctx context.Context, storeID int64) ([]models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, input ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type service struct {
	repo Repository
}

// NewService wires a products service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func validateInput(input ProductInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if input.BuyPrice.IsNegative() || input.SellPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "prices must not be negative")
	}
	return nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:            input.Name,
		QuantityInStock: input.QuantityInStock,
		BuyPrice:        input.BuyPrice,
		SellPrice:       input.SellPrice,
		StoreID:         input.StoreID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, mapStoreError(err, "create product")
	}
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	if productID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.Find(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", productID))
		}
		return nil, mapStoreError(err, "load product")
	}
	return product, nil
}

func (s *service) ListProductsByStore(ctx context.Context, storeID int64) ([]models.Product, error) {
	if storeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	listing, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err, "list products")
	}
	return listing, nil
}

func (s *service) UpdateProduct(ctx context.Context, productID int64, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.QuantityInStock = input.QuantityInStock
	product.BuyPrice = input.BuyPrice
	product.SellPrice = input.SellPrice
	product.StoreID = input.StoreID
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, mapStoreError(err, "update product")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	affected, err := s.repo.Delete(ctx, productID)
	if err != nil {
		return mapStoreError(err, "delete product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", productID))
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
