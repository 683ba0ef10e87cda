package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodLog is one confirmed meal/food entry.
//
// CreatedAt doubles as the log timestamp: it is set once when the entry is
// confirmed and never changes afterwards. Edits may rewrite the nutrition
// fields but not the timestamp, so an entry stays in the calendar day it was
// logged on.
type FoodLog struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Description string `gorm:"type:varchar(500);not null" json:"description"`

	Calories int             `gorm:"not null;default:0" json:"calories"`
	Protein  int             `gorm:"not null;default:0" json:"protein"`
	Cost     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cost"`

	// Set when the entry was logged from a pantry item.
	PantryItemID   *uint    `gorm:"index" json:"pantry_item_id,omitempty"`
	AmountConsumed *float64 `json:"amount_consumed,omitempty"` // servings taken from the pantry item
}
