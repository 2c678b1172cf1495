package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/internal/repo"
	"github.com/muskieco/retail-backend/pkg/db/models"
)

// Repository runs the read-side aggregate queries behind the reports menu.
type Repository interface {
	SalesBetween(ctx context.Context, storeID int64, from, to time.Time) (int64, decimal.Decimal, error)
	ProductStock(ctx context.Context, storeID int64) ([]models.Product, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

type salesRow struct {
	Count int64
	Total decimal.Decimal
}

// SalesBetween aggregates transaction count and summed totals over the
// half-open window [from, to).
func (r *repository) SalesBetween(ctx context.Context, storeID int64, from, to time.Time) (int64, decimal.Decimal, error) {
	var row salesRow
	err := r.DB(ctx).
		Model(&models.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
		Where("store_id = ? AND purchase_date >= ? AND purchase_date < ?", storeID, from, to).
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return row.Count, row.Total, nil
}

func (r *repository) ProductStock(ctx context.Context, storeID int64) ([]models.Product, error) {
	var listing []models.Product
	if err := r.DB(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}
