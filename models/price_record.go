package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceRecord is one observed price for a pantry item. A row is appended
// whenever the item's total cost changes, so price trends survive edits.
type PriceRecord struct {
	gorm.Model
	UserID       uint            `gorm:"index;not null" json:"user_id"`
	PantryItemID uint            `gorm:"index;not null" json:"pantry_item_id"`
	CostAtTime   decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_at_time"`
	DateRecorded time.Time       `json:"date_recorded"`
}
