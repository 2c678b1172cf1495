package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository manages persistence for transaction headers and line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	FindTransaction(ctx context.Context, transactionID int64) (*models.Transaction, error)
	FindItems(ctx context.Context, transactionID int64) ([]models.TransactionItem, error)
	CreateItem(ctx context.Context, item *models.TransactionItem) error
	FindProduct(ctx context.Context, productID int64) (*models.Product, error)
	UpdateTransactionTotal(ctx context.Context, transactionID int64, total decimal.Decimal) error
}

type repository struct {
	repo.Base
}

// NewRepository returns a ledger repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	return r.DB(ctx).Create(txn).Error
}

func (r *repository) FindTransaction(ctx context.Context, transactionID int64) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.DB(ctx).
		Where("id = ?", transactionID).
		First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *repository) FindItems(ctx context.Context, transactionID int64) ([]models.TransactionItem, error) {
	var items []models.TransactionItem
	if err := r.DB(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateItem(ctx context.Context, item *models.TransactionItem) error {
	return r.DB(ctx).Create(item).Error
}

func (r *repository) FindProduct(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).
		Where("id = ?", productID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) UpdateTransactionTotal(ctx context.Context, transactionID int64, total decimal.Decimal) error {
	return r.DB(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", transactionID).
		Update("total_price", total).Error
}
