package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem is one product line within a transaction. Rows are
// append-only once written; there is no update path for individual items.
type TransactionItem struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID   int64           `gorm:"column:transaction_id;not null"`
	ProductID       int64           `gorm:"column:product_id;not null"`
	Quantity        int             `gorm:"column:quantity;not null"`
	DiscountPercent decimal.Decimal `gorm:"column:discount_percent;type:numeric(5,2);not null;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}
