package models

import "time"

// Customer represents a rewards-program member.
type Customer struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	PhoneNumber  string    `gorm:"column:phone_number;not null"`
	HomeAddress  string    `gorm:"column:home_address;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	SignUpDate   time.Time `gorm:"column:sign_up_date;type:date;not null"`
	RewardPoints int       `gorm:"column:reward_points;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
