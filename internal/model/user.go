package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(150);not null;uniqueIndex:idx_username"`
	FirstName string `gorm:"type:varchar(150);not null;default:''"`
	LastName  string `gorm:"type:varchar(150);not null;default:''"`
	Email     string `gorm:"type:varchar(254);not null;default:''"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
