package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PantryItem tracks one purchased food across its servings.
type PantryItem struct {
	gorm.Model
	UserID  uint  `gorm:"index;not null" json:"user_id"`
	StoreID *uint `gorm:"index" json:"store_id,omitempty"` // where it was bought

	Name               string          `gorm:"not null" json:"name"`
	TotalCost          decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_cost"`
	TotalServings      float64         `json:"total_servings"`
	CurrentServings    float64         `json:"current_servings"`
	ProteinPerServing  int             `json:"protein_per_serving"`
	CaloriesPerServing int             `json:"calories_per_serving"`
	ServingUnit        string          `gorm:"default:serving" json:"serving_unit"`
	IsOutOfStock       bool            `gorm:"not null;default:false" json:"is_out_of_stock"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
}

// CostPerServing returns the per-serving share of the purchase price.
func (p *PantryItem) CostPerServing() decimal.Decimal {
	if p.TotalServings <= 0 {
		return decimal.Zero
	}
	return p.TotalCost.Div(decimal.NewFromFloat(p.TotalServings)).Round(2)
}
