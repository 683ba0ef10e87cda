package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestEstimateNutritionDeterministic(t *testing.T) {
	a := EstimateNutrition("chicken breast with rice")
	b := EstimateNutrition("chicken breast with rice")

	if a.Calories != b.Calories || a.Protein != b.Protein || !a.Cost.Equal(b.Cost) {
		t.Fatalf("same input produced different estimates: %+v vs %+v", a, b)
	}
}

func TestEstimateNutritionEggQuantity(t *testing.T) {
	got := EstimateNutrition("3 eggs scrambled")

	if got.Calories != 216 {
		t.Fatalf("calories = %d, want 216", got.Calories)
	}
	if got.Protein != 18 {
		t.Fatalf("protein = %d, want 18", got.Protein)
	}
	if !got.Cost.Equal(mustDecimal(t, "1.05")) {
		t.Fatalf("cost = %s, want 1.05", got.Cost)
	}
}

func TestEstimateNutritionSingleEgg(t *testing.T) {
	got := EstimateNutrition("fried egg")

	if got.Calories != 72 || got.Protein != 6 {
		t.Fatalf("got %d cal / %d g, want 72 / 6", got.Calories, got.Protein)
	}
}

func TestEstimateNutritionDefaultFallback(t *testing.T) {
	got := EstimateNutrition("mystery stew")

	if got.Calories != DefaultCalories {
		t.Fatalf("calories = %d, want default %d", got.Calories, DefaultCalories)
	}
	if got.Protein != DefaultProtein {
		t.Fatalf("protein = %d, want default %d", got.Protein, DefaultProtein)
	}
	if !got.Cost.Equal(mustDecimal(t, "2.00")) {
		t.Fatalf("cost = %s, want 2.00", got.Cost)
	}
}

func TestEstimateNutritionSpecificBeatsGeneric(t *testing.T) {
	greek := EstimateNutrition("greek yogurt")
	if greek.Protein != 17 {
		t.Fatalf("greek yogurt protein = %d, want 17 (plain yogurt rule must not fire)", greek.Protein)
	}

	plain := EstimateNutrition("yogurt")
	if plain.Protein != 9 {
		t.Fatalf("plain yogurt protein = %d, want 9", plain.Protein)
	}

	breast := EstimateNutrition("chicken breast")
	if breast.Calories != 165 || breast.Protein != 31 {
		t.Fatalf("chicken breast = %d cal / %d g, want 165 / 31 (must count once)", breast.Calories, breast.Protein)
	}
}

func TestEstimateNutritionIngredientsAccumulate(t *testing.T) {
	got := EstimateNutrition("yogurt and banana")

	if got.Calories != 255 {
		t.Fatalf("calories = %d, want 255 (150 yogurt + 105 banana)", got.Calories)
	}
	if got.Protein != 10 {
		t.Fatalf("protein = %d, want 10", got.Protein)
	}
	if !got.Cost.Equal(mustDecimal(t, "1.20")) {
		t.Fatalf("cost = %s, want 1.20", got.Cost)
	}
}

// Restaurant phrases are whole-meal estimates but still stack with any
// ingredient mentions. That matches the shipped behavior.
func TestEstimateNutritionRestaurantStacksWithIngredients(t *testing.T) {
	got := EstimateNutrition("chipotle burrito with chicken")

	if got.Calories != 1015 {
		t.Fatalf("calories = %d, want 1015 (850 chipotle + 165 chicken)", got.Calories)
	}
	if got.Protein != 76 {
		t.Fatalf("protein = %d, want 76", got.Protein)
	}
	if !got.Cost.Equal(mustDecimal(t, "13.00")) {
		t.Fatalf("cost = %s, want 13.00", got.Cost)
	}
}

func TestEstimateNutritionChipotleSuppressesBurrito(t *testing.T) {
	chipotle := EstimateNutrition("chipotle burrito")
	plain := EstimateNutrition("burrito")

	if chipotle.Calories != 850 {
		t.Fatalf("chipotle burrito = %d cal, want 850 (plain burrito rule must not stack)", chipotle.Calories)
	}
	if plain.Calories != 650 {
		t.Fatalf("plain burrito = %d cal, want 650", plain.Calories)
	}
}

func TestEstimateNutritionPortionDoubling(t *testing.T) {
	got := EstimateNutrition("2 slices of toast with peanut butter")

	if got.Calories != 350 {
		t.Fatalf("calories = %d, want 350 (80*2 toast + 190 peanut butter)", got.Calories)
	}
	if !got.Cost.Equal(mustDecimal(t, "0.80")) {
		t.Fatalf("cost = %s, want 0.80", got.Cost)
	}
}

func TestEstimateNutritionCaseInsensitive(t *testing.T) {
	upper := EstimateNutrition("  GREEK YOGURT  ")
	lower := EstimateNutrition("greek yogurt")

	if upper.Calories != lower.Calories || upper.Protein != lower.Protein {
		t.Fatalf("case/whitespace changed the estimate: %+v vs %+v", upper, lower)
	}
}

func TestEstimateNutritionCostTwoDecimalPlaces(t *testing.T) {
	got := EstimateNutrition("3 eggs and toast")
	if got.Cost.Exponent() < -2 {
		t.Fatalf("cost %s has more than two decimal places", got.Cost)
	}
}
