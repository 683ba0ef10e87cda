package utils

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Estimate is a transient nutrition/cost guess for one free-text meal
// description. It is editable and not persisted until the user confirms it
// as a food log entry.
type Estimate struct {
	Description string          `json:"description"`
	Calories    int             `json:"calories"`
	Protein     int             `json:"protein"`
	Cost        decimal.Decimal `json:"cost"`
}

// Fallback returned when no rule recognizes the input. Non-zero on purpose:
// a zero-calorie entry would silently vanish from the daily totals.
const (
	DefaultCalories = 200
	DefaultProtein  = 10
)

var defaultCost = decimal.RequireFromString("2.00")

// foodRule is one keyword rule of the offline estimator.
//
// Rules in the same exclusion group are listed most-specific first and at
// most one of them fires ("greek yogurt" suppresses "yogurt"). Rules with an
// empty group stand alone. Across groups everything is additive: a
// description mentioning eggs and toast accumulates both.
//
// Restaurant phrases are whole-meal estimates and still stack with any
// ingredient rules that matched ("chipotle burrito with chicken" sums the
// chipotle meal and the chicken portion). That mirrors the product's
// shipped behavior; see DESIGN.md before changing it.
type foodRule struct {
	group    string
	triggers []string
	calories float64 // per matched unit
	protein  float64
	cost     float64
	quantity func(text string) float64 // nil means multiplier 1
}

var eggCount = regexp.MustCompile(`(\d+)\s*eggs?`)

// quantityFromEggs reads a digit directly adjacent to "egg(s)".
// "3 eggs" scales by 3; "eggs" alone means one.
func quantityFromEggs(text string) float64 {
	m := eggCount.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return 1
	}
	return float64(n)
}

// doubleIfTwo is the coarse portion heuristic for foods without a unit
// phrase: a literal "2" anywhere in the text doubles the portion.
func doubleIfTwo(text string) float64 {
	if strings.Contains(text, "2") {
		return 2
	}
	return 1
}

// foodRules is evaluated in order. Per-unit constants follow typical US
// grocery prices; restaurant rules use menu prices.
var foodRules = []foodRule{
	{group: "egg", triggers: []string{"egg"}, calories: 72, protein: 6, cost: 0.35, quantity: quantityFromEggs},

	{group: "chicken", triggers: []string{"chicken breast"}, calories: 165, protein: 31, cost: 1.50, quantity: doubleIfTwo},
	{group: "chicken", triggers: []string{"chicken"}, calories: 165, protein: 31, cost: 1.50, quantity: doubleIfTwo},

	{triggers: []string{"tuna"}, calories: 100, protein: 22, cost: 1.00, quantity: doubleIfTwo},

	{group: "yogurt", triggers: []string{"greek yogurt"}, calories: 100, protein: 17, cost: 1.00},
	{group: "yogurt", triggers: []string{"yogurt"}, calories: 150, protein: 9, cost: 0.90},

	{triggers: []string{"protein shake", "protein powder", "whey"}, calories: 120, protein: 25, cost: 0.80},
	{triggers: []string{"milk"}, calories: 150, protein: 8, cost: 0.50},

	{group: "rice", triggers: []string{"brown rice"}, calories: 215, protein: 5, cost: 0.35},
	{group: "rice", triggers: []string{"rice"}, calories: 200, protein: 4, cost: 0.30},

	{triggers: []string{"beans", "lentils"}, calories: 225, protein: 15, cost: 0.50},
	{triggers: []string{"peanut butter"}, calories: 190, protein: 7, cost: 0.40},
	{triggers: []string{"oatmeal", "oats"}, calories: 150, protein: 5, cost: 0.25},

	{group: "cheese", triggers: []string{"cottage cheese"}, calories: 110, protein: 14, cost: 1.00},
	{group: "cheese", triggers: []string{"cheese"}, calories: 110, protein: 7, cost: 0.60},

	{triggers: []string{"tofu"}, calories: 180, protein: 20, cost: 1.00},
	{triggers: []string{"sardines"}, calories: 150, protein: 23, cost: 1.50},
	{triggers: []string{"salmon"}, calories: 230, protein: 25, cost: 3.00},

	{group: "beef", triggers: []string{"steak"}, calories: 350, protein: 35, cost: 5.00},
	{group: "beef", triggers: []string{"ground beef", "beef"}, calories: 280, protein: 22, cost: 2.50},

	{triggers: []string{"toast", "bread"}, calories: 80, protein: 3, cost: 0.20, quantity: doubleIfTwo},
	{triggers: []string{"pasta"}, calories: 220, protein: 8, cost: 0.50},
	{triggers: []string{"potato"}, calories: 160, protein: 4, cost: 0.40},
	{triggers: []string{"banana"}, calories: 105, protein: 1, cost: 0.30},
	{triggers: []string{"apple"}, calories: 95, protein: 0, cost: 0.60},

	// Restaurant / fast food: whole-meal estimates.
	{group: "burrito", triggers: []string{"chipotle"}, calories: 850, protein: 45, cost: 11.50},
	{group: "burrito", triggers: []string{"burrito"}, calories: 650, protein: 30, cost: 8.00},
	{triggers: []string{"big mac", "mcdonald"}, calories: 750, protein: 30, cost: 8.00},
	{triggers: []string{"pizza"}, calories: 285, protein: 12, cost: 2.50, quantity: doubleIfTwo},
	{triggers: []string{"burger"}, calories: 550, protein: 25, cost: 9.00},
	{triggers: []string{"subway"}, calories: 480, protein: 26, cost: 8.50},
	{triggers: []string{"taco bell"}, calories: 540, protein: 20, cost: 7.50},
	{triggers: []string{"takeout", "restaurant"}, calories: 700, protein: 30, cost: 12.00},
}

// EstimateNutrition maps an arbitrary meal description to a deterministic
// calories/protein/cost triple without touching the network. It backs the
// analyze endpoint whenever the AI call fails and is the whole story in
// offline mode. Identical input always yields identical output.
func EstimateNutrition(text string) Estimate {
	lower := strings.ToLower(strings.TrimSpace(text))

	var calories, protein, cost float64
	fired := map[string]bool{}

	for _, r := range foodRules {
		if r.group != "" && fired[r.group] {
			continue
		}
		matched := false
		for _, t := range r.triggers {
			if strings.Contains(lower, t) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if r.group != "" {
			fired[r.group] = true
		}
		qty := 1.0
		if r.quantity != nil {
			qty = r.quantity(lower)
		}
		calories += r.calories * qty
		protein += r.protein * qty
		cost += r.cost * qty
	}

	if calories == 0 {
		return Estimate{
			Description: text,
			Calories:    DefaultCalories,
			Protein:     DefaultProtein,
			Cost:        defaultCost,
		}
	}

	return Estimate{
		Description: text,
		Calories:    int(math.Round(calories)),
		Protein:     int(math.Round(protein)),
		Cost:        decimal.NewFromFloat(cost).Round(2),
	}
}
