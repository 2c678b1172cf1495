package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a stocked item at a store. SellPrice is the current
// shelf price; line items reference it at total-computation time rather
// than snapshotting it at sale time.
type Product struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string          `gorm:"column:name;not null"`
	QuantityInStock int             `gorm:"column:quantity_in_stock;not null;default:0"`
	BuyPrice        decimal.Decimal `gorm:"column:buy_price;type:numeric(12,2);not null"`
	SellPrice       decimal.Decimal `gorm:"column:sell_price;type:numeric(12,2);not null"`
	StoreID         int64           `gorm:"column:store_id;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
