package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/validate"
)

var oneHundred = decimal.NewFromInt(100)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the ledger writer surface exposed to the presentation
// layer: header creation, atomic line-item attachment, and derived totals.
type Service interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
	AddItems(ctx context.Context, transactionID int64, items []ItemInput) error
	ComputeTotal(ctx context.Context, transactionID int64) (decimal.Decimal, error)
	GetTransaction(ctx context.Context, transactionID int64) (*models.Transaction, []models.TransactionItem, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService wires a ledger service with the provided repository and
// transaction runner.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid transaction type %q", input.Type))
	}
	if input.TotalPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total price estimate must not be negative")
	}

	txn := &models.Transaction{
		ReceiptNumber: uuid.New(),
		StoreID:       input.StoreID,
		CustomerID:    input.CustomerID,
		CashierID:     input.CashierID,
		PurchaseDate:  input.PurchaseDate,
		TotalPrice:    input.TotalPrice,
		Type:          input.Type,
	}

	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, mapStoreError(err, "create transaction")
	}
	return txn, nil
}

// AddItems attaches the batch to an existing transaction as a single
// all-or-nothing unit. Validation happens before anything is written; a
// mid-sequence store failure rolls every insert in this call back.
func (s *service) AddItems(ctx context.Context, transactionID int64, items []ItemInput) error {
	if transactionID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "transaction id required")
	}
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one item required")
	}
	if err := validateItems(items); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindTransaction(ctx, transactionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("transaction %d not found", transactionID))
			}
			return mapStoreError(err, "load transaction")
		}

		for i, input := range items {
			item := &models.TransactionItem{
				TransactionID:   transactionID,
				ProductID:       input.ProductID,
				Quantity:        input.Quantity,
				DiscountPercent: input.DiscountPercent,
			}
			if err := repo.CreateItem(ctx, item); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodePartialWrite, err,
					fmt.Sprintf("attaching item %d of %d", i+1, len(items))).
					WithDetails(map[string]any{
						"transaction_id": transactionID,
						"product_id":     input.ProductID,
						"reference":      db.IsForeignKeyViolation(err),
					})
			}
		}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return typed
		}
		return mapStoreError(err, "attach items")
	}
	return nil
}

// ComputeTotal derives the transaction total from current product prices:
// sum of SellPrice x Quantity x (1 - discount/100), rounded to 2 places.
// The recomputed value is written back onto the header.
func (s *service) ComputeTotal(ctx context.Context, transactionID int64) (decimal.Decimal, error) {
	if transactionID <= 0 {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "transaction id required")
	}

	if _, err := s.repo.FindTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("transaction %d not found", transactionID))
		}
		return decimal.Zero, mapStoreError(err, "load transaction")
	}

	items, err := s.repo.FindItems(ctx, transactionID)
	if err != nil {
		return decimal.Zero, mapStoreError(err, "load transaction items")
	}

	total := decimal.Zero
	for _, item := range items {
		product, err := s.repo.FindProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, pkgerrors.New(pkgerrors.CodeReference,
					fmt.Sprintf("product %d referenced by transaction %d no longer exists", item.ProductID, transactionID))
			}
			return decimal.Zero, mapStoreError(err, "load product price")
		}

		factor := oneHundred.Sub(item.DiscountPercent).Div(oneHundred)
		line := product.SellPrice.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Mul(factor)
		total = total.Add(line)
	}
	total = total.Round(2)

	if err := s.repo.UpdateTransactionTotal(ctx, transactionID, total); err != nil {
		return decimal.Zero, mapStoreError(err, "persist transaction total")
	}
	return total, nil
}

func (s *service) GetTransaction(ctx context.Context, transactionID int64) (*models.Transaction, []models.TransactionItem, error) {
	if transactionID <= 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction id required")
	}

	txn, err := s.repo.FindTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("transaction %d not found", transactionID))
		}
		return nil, nil, mapStoreError(err, "load transaction")
	}

	items, err := s.repo.FindItems(ctx, transactionID)
	if err != nil {
		return nil, nil, mapStoreError(err, "load transaction items")
	}
	return txn, items, nil
}

func validateItems(items []ItemInput) error {
	var errs []error
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(oneHundred) {
			errs = append(errs, fmt.Errorf("item %d: discount percent must be between 0 and 100", i+1))
		}
	}
	if combined := multierr.Combine(errs...); combined != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, combined, "invalid line items").
			WithDetails(map[string]any{"errors": combined.Error()})
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
