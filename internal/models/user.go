package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the single admin account. The application always operates on the
// first row; multi-tenancy is out of scope.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(20)" json:"name"`
	Username     string         `gorm:"type:varchar(20)" json:"username"`
	PasswordHash string         `gorm:"type:varchar(128)" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
