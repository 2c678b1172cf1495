package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muskieco/retail-backend/pkg/enums"
)

// Transaction is the header row of one purchase or return event. TotalPrice
// starts as the caller-supplied estimate and is recomputed from line items.
type Transaction struct {
	ID            int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	ReceiptNumber uuid.UUID             `gorm:"column:receipt_number;type:uuid;not null"`
	StoreID       int64                 `gorm:"column:store_id;not null"`
	CustomerID    int64                 `gorm:"column:customer_id;not null"`
	CashierID     int64                 `gorm:"column:cashier_id;not null"`
	PurchaseDate  time.Time             `gorm:"column:purchase_date;type:date;not null"`
	TotalPrice    decimal.Decimal       `gorm:"column:total_price;type:numeric(12,2);not null"`
	Type          enums.TransactionType `gorm:"column:type;not null"`
	Items         []TransactionItem     `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
