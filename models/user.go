package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	AccountID   string `gorm:"type:varchar(36);uniqueIndex;not null"` // opaque public identifier
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	DisplayName string
}
