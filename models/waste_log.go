package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WasteLog records food that was thrown away instead of eaten.
type WasteLog struct {
	gorm.Model
	UserID       uint  `gorm:"index;not null" json:"user_id"`
	PantryItemID *uint `gorm:"index" json:"pantry_item_id,omitempty"`

	ItemName     string          `gorm:"not null" json:"item_name"`
	AmountWasted float64         `json:"amount_wasted"` // servings
	CostLost     decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_lost"`
	WasteReason  string          `json:"waste_reason,omitempty"`
	IsExpired    bool            `gorm:"not null;default:false" json:"is_expired"`
}
