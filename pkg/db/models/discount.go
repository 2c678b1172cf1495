package models

import "time"

// Discount marks a product as discounted at a particular store. The
// percentage actually applied is recorded per line item at sale time.
type Discount struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int64     `gorm:"column:product_id;not null"`
	StoreID   int64     `gorm:"column:store_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
