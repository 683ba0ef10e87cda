package models

import (
	"gorm.io/gorm"
)

type Settings struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Notifications bool `gorm:"not null;default:false" json:"notifications"`
	DarkMode      bool `gorm:"not null;default:true" json:"dark_mode"`
}
