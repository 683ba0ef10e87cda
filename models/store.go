package models

import (
	"gorm.io/gorm"
)

// Store is a grocery store a user buys pantry items from.
type Store struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	LocationTag string `json:"location_tag,omitempty"`
}
