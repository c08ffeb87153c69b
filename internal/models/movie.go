package models

import (
	"time"

	"gorm.io/gorm"
)

// Movie is a watchlist entry. Year is kept as text because it is form input
// displayed verbatim; no arithmetic is ever done on it.
type Movie struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"type:varchar(60)" json:"title"`
	Year      string         `gorm:"type:varchar(4)" json:"year"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
