package models

import "time"

// CustomerSignUp records which staff member enrolled a customer; the staff
// rewards report counts these rows.
type CustomerSignUp struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    int64     `gorm:"column:customer_id;not null"`
	SignUpStaffID int64     `gorm:"column:sign_up_staff_id;not null"`
	StoreID       int64     `gorm:"column:store_id;not null"`
	SignUpDate    time.Time `gorm:"column:sign_up_date;type:date;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
