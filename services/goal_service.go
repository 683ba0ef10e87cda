package services

import (
	"errors"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetGoals returns the user's targets, falling back to the product defaults
// (2000 kcal / 150 g / $15) when nothing was ever saved.
func GetGoals(userID uint) (models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultGoal(userID), nil
		}
		return goal, err
	}
	return goal, nil
}

// UpsertGoals saves new targets. Archived history keeps its own goal
// snapshot, so this never rewrites past days.
func UpsertGoals(userID uint, calories, protein int, budget decimal.Decimal) error {
	if calories <= 0 || protein <= 0 || !budget.IsPositive() {
		return errors.New("goals must be positive")
	}

	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Budget:   budget.Round(2),
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Budget = budget.Round(2)
	return config.DB.Save(&goal).Error
}

// GetGoalsAndProgress pairs the targets with today's consumption and the
// percentage toward each target, capped at 100%.
func GetGoalsAndProgress(userID uint) (models.Goal, map[string]interface{}, error) {
	goal, err := GetGoals(userID)
	if err != nil {
		return goal, nil, err
	}

	agg := NewDefaultAggregationService()
	if err := agg.CatchUp(userID); err != nil {
		return goal, nil, err
	}
	totals, err := agg.TodayTotals(userID)
	if err != nil {
		return goal, nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}
	spent, _ := totals.Cost.Float64()
	budget, _ := goal.Budget.Float64()

	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": float64(totals.Calories), "goal": float64(goal.Calories), "percent": pct(float64(totals.Calories), float64(goal.Calories))},
		"protein":  map[string]float64{"consumed": float64(totals.Protein), "goal": float64(goal.Protein), "percent": pct(float64(totals.Protein), float64(goal.Protein))},
		"budget":   map[string]float64{"consumed": spent, "goal": budget, "percent": pct(spent, budget)},
	}
	return goal, progress, nil
}
