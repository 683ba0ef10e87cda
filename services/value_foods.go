package services

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ValueFood is one row of the built-in protein-per-dollar reference table
// shown on the Value Foods tab.
type ValueFood struct {
	Name             string          `json:"name"`
	ProteinPerDollar float64         `json:"protein_per_dollar"`
	Protein          int             `json:"protein"`
	Cost             decimal.Decimal `json:"cost"`
}

var valueFoods = []ValueFood{
	{Name: "Eggs (dozen)", ProteinPerDollar: 24, Protein: 72, Cost: decimal.RequireFromString("3.00")},
	{Name: "Chicken Breast (lb)", ProteinPerDollar: 22, Protein: 110, Cost: decimal.RequireFromString("5.00")},
	{Name: "Canned Tuna", ProteinPerDollar: 22, Protein: 22, Cost: decimal.RequireFromString("1.00")},
	{Name: "Greek Yogurt", ProteinPerDollar: 17, Protein: 17, Cost: decimal.RequireFromString("1.00")},
	{Name: "Cottage Cheese", ProteinPerDollar: 14, Protein: 28, Cost: decimal.RequireFromString("2.00")},
	{Name: "Protein Powder (serving)", ProteinPerDollar: 31, Protein: 25, Cost: decimal.RequireFromString("0.80")},
	{Name: "Black Beans (can)", ProteinPerDollar: 15, Protein: 15, Cost: decimal.RequireFromString("1.00")},
	{Name: "Lentils (dry, 1 cup)", ProteinPerDollar: 36, Protein: 18, Cost: decimal.RequireFromString("0.50")},
	{Name: "Peanut Butter (2 tbsp)", ProteinPerDollar: 17.5, Protein: 7, Cost: decimal.RequireFromString("0.40")},
	{Name: "Milk (gallon)", ProteinPerDollar: 24, Protein: 96, Cost: decimal.RequireFromString("4.00")},
	{Name: "Tofu (block)", ProteinPerDollar: 20, Protein: 40, Cost: decimal.RequireFromString("2.00")},
	{Name: "Sardines (can)", ProteinPerDollar: 15, Protein: 23, Cost: decimal.RequireFromString("1.50")},
}

// ListValueFoods returns the reference table ranked by protein per dollar.
func ListValueFoods() []ValueFood {
	out := make([]ValueFood, len(valueFoods))
	copy(out, valueFoods)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProteinPerDollar > out[j].ProteinPerDollar
	})
	return out
}
