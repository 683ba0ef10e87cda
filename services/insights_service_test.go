package services

import (
	"testing"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
)

func historyDay(offset int, calories, protein int, cost string) models.DayHistory {
	return models.DayHistory{
		Date:     DayStart(time.Now()).AddDate(0, 0, offset),
		Calories: calories,
		Protein:  protein,
		Cost:     decimal.RequireFromString(cost),
	}
}

func TestEfficiencySeriesWindowAndGaps(t *testing.T) {
	history := []models.DayHistory{
		historyDay(0, 2000, 50, "5.00"),
		historyDay(-2, 1800, 0, "4.00"), // zero protein: no point
	}

	points := efficiencySeries(history)

	if len(points) != insightsWindowDays {
		t.Fatalf("got %d points, want %d", len(points), insightsWindowDays)
	}

	last := points[len(points)-1]
	if last.Value == nil {
		t.Fatal("today has data, expected a value")
	}
	// $5.00 for 50 g of protein is $10.00 per 100 g
	if *last.Value != 10.00 {
		t.Fatalf("today's efficiency = %v, want 10.00", *last.Value)
	}

	zeroProteinDay := points[len(points)-3]
	if zeroProteinDay.Value != nil {
		t.Fatalf("zero-protein day must have a nil value, got %v", *zeroProteinDay.Value)
	}

	empty := points[0]
	if empty.Value != nil {
		t.Fatalf("day with no archive row must have a nil value, got %v", *empty.Value)
	}
}

func TestPantryRunway(t *testing.T) {
	history := []models.DayHistory{
		historyDay(-1, 1000, 60, "6.00"),
		historyDay(-2, 1000, 60, "6.00"),
	}
	pantry := []models.PantryItem{
		{Name: "chicken", CaloriesPerServing: 200, CurrentServings: 10}, // 2000 cal
		{Name: "rice", CaloriesPerServing: 100, CurrentServings: 10},    // 1000 cal
	}

	got := pantryRunway(history, pantry)

	if got.Days != 3 {
		t.Fatalf("runway = %d days, want 3 (3000 cal at 1000/day)", got.Days)
	}
	wantPct := float64(3) / insightsWindowDays * 100
	if got.Percentage != wantPct {
		t.Fatalf("percentage = %v, want %v", got.Percentage, wantPct)
	}
}

func TestPantryRunwayNoHistory(t *testing.T) {
	got := pantryRunway(nil, []models.PantryItem{{CaloriesPerServing: 200, CurrentServings: 5}})
	if got.Days != 0 || got.Percentage != 0 {
		t.Fatalf("runway without history = %+v, want zeros", got)
	}
}

func TestPantryRunwayPercentageCapped(t *testing.T) {
	history := []models.DayHistory{historyDay(-1, 100, 10, "1.00")}
	pantry := []models.PantryItem{{CaloriesPerServing: 1000, CurrentServings: 10}} // 100 days worth

	got := pantryRunway(history, pantry)
	if got.Percentage != 100 {
		t.Fatalf("percentage = %v, want capped at 100", got.Percentage)
	}
}

func TestTopValueFoods(t *testing.T) {
	pantry := []models.PantryItem{
		{Name: "eggs", TotalCost: decimal.RequireFromString("4.20"), TotalServings: 12, ProteinPerServing: 6},
		{Name: "chicken", TotalCost: decimal.RequireFromString("9.00"), TotalServings: 6, ProteinPerServing: 30},
		{Name: "soda", TotalCost: decimal.RequireFromString("2.00"), TotalServings: 4, ProteinPerServing: 0}, // excluded
	}

	got := topValueFoods(pantry)

	if len(got) != 2 {
		t.Fatalf("got %d ranks, want 2 (zero-protein item excluded)", len(got))
	}
	// chicken: 1.50/serving over 30 g = 0.050; eggs: 0.35/serving over 6 g = 0.058
	if got[0].Name != "chicken" {
		t.Fatalf("best value = %q, want chicken", got[0].Name)
	}
	if !got[0].CostPerGramProtein.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("chicken cost/g = %s, want 0.05", got[0].CostPerGramProtein)
	}
}

func TestTopValueFoodsCapsAtFive(t *testing.T) {
	pantry := make([]models.PantryItem, 0, 8)
	for i := 0; i < 8; i++ {
		pantry = append(pantry, models.PantryItem{
			Name:              "item",
			TotalCost:         decimal.RequireFromString("5.00"),
			TotalServings:     5,
			ProteinPerServing: i + 1,
		})
	}
	if got := topValueFoods(pantry); len(got) != 5 {
		t.Fatalf("got %d ranks, want 5", len(got))
	}
}
