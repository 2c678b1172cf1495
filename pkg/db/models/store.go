package models

import "time"

// Store represents one MuskieCo retail location.
type Store struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Address     string    `gorm:"column:address;not null"`
	PhoneNumber string    `gorm:"column:phone_number;not null"`
	ManagerID   *int64    `gorm:"column:manager_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
