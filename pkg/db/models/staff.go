package models

import "time"

// Staff represents an employee assigned to a store.
type Staff struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID     int64     `gorm:"column:store_id;not null"`
	Name        string    `gorm:"column:name;not null"`
	Age         int       `gorm:"column:age;not null"`
	HomeAddress string    `gorm:"column:home_address;not null"`
	PhoneNumber string    `gorm:"column:phone_number;not null"`
	Email       string    `gorm:"column:email;not null"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the plural-free table name gorm would otherwise mangle.
func (Staff) TableName() string {
	return "staff"
}
