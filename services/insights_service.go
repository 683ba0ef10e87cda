package services

import (
	"sort"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InsightsService struct {
	db *gorm.DB
}

func NewInsightsService(db *gorm.DB) *InsightsService {
	return &InsightsService{db: db}
}

const insightsWindowDays = 14

// EfficiencyPoint is one day of the cost-per-100g-protein series. Value is
// nil on days with no archived data or zero protein; consumers must treat
// "no point" as "no data", not as zero.
type EfficiencyPoint struct {
	Day   string   `json:"day"` // yyyy-mm-dd
	Value *float64 `json:"value"`
}

type PantryRunway struct {
	Days       int     `json:"days"`
	Percentage float64 `json:"percentage"` // of the 14-day gauge
}

type ValueFoodRank struct {
	Name               string          `json:"name"`
	CostPerGramProtein decimal.Decimal `json:"cost_per_gram_protein"`
	ProteinPerServing  int             `json:"protein_per_serving"`
}

type InsightsSummary struct {
	Efficiency []EfficiencyPoint `json:"efficiency"`
	Runway     PantryRunway      `json:"runway"`
	TopValue   []ValueFoodRank   `json:"top_value_foods"`
}

// Summary builds the Pro Insights view: protein spending efficiency over
// the trailing two weeks, how many days the pantry would last at the
// user's average intake, and the best-value pantry foods.
func (s *InsightsService) Summary(userID uint) (*InsightsSummary, error) {
	since := DayStart(time.Now()).AddDate(0, 0, -insightsWindowDays)

	var history []models.DayHistory
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	var pantry []models.PantryItem
	err = s.db.
		Where("user_id = ? AND is_out_of_stock = ?", userID, false).
		Find(&pantry).Error
	if err != nil {
		return nil, err
	}

	return &InsightsSummary{
		Efficiency: efficiencySeries(history),
		Runway:     pantryRunway(history, pantry),
		TopValue:   topValueFoods(pantry),
	}, nil
}

func efficiencySeries(history []models.DayHistory) []EfficiencyPoint {
	byDate := map[string]models.DayHistory{}
	for _, h := range history {
		byDate[h.Date.Format("2006-01-02")] = h
	}

	points := make([]EfficiencyPoint, 0, insightsWindowDays)
	for i := insightsWindowDays - 1; i >= 0; i-- {
		day := DayStart(time.Now()).AddDate(0, 0, -i)
		key := day.Format("2006-01-02")

		p := EfficiencyPoint{Day: key}
		if h, ok := byDate[key]; ok && h.Protein > 0 {
			// dollars per 100 g of protein eaten that day
			v, _ := h.Cost.Div(decimal.NewFromInt(int64(h.Protein)).Div(decimal.NewFromInt(100))).Round(2).Float64()
			p.Value = &v
		}
		points = append(points, p)
	}
	return points
}

func pantryRunway(history []models.DayHistory, pantry []models.PantryItem) PantryRunway {
	totalCalories := 0.0
	for _, item := range pantry {
		totalCalories += float64(item.CaloriesPerServing) * item.CurrentServings
	}

	if len(history) == 0 {
		return PantryRunway{}
	}
	sum := 0
	for _, h := range history {
		sum += h.Calories
	}
	avg := float64(sum) / float64(len(history))
	if avg == 0 {
		return PantryRunway{}
	}

	days := int(totalCalories / avg)
	pct := float64(days) / insightsWindowDays * 100
	if pct > 100 {
		pct = 100
	}
	return PantryRunway{Days: days, Percentage: pct}
}

func topValueFoods(pantry []models.PantryItem) []ValueFoodRank {
	ranks := make([]ValueFoodRank, 0, len(pantry))
	for _, item := range pantry {
		if item.ProteinPerServing <= 0 || item.TotalServings <= 0 {
			continue
		}
		perGram := item.CostPerServing().
			Div(decimal.NewFromInt(int64(item.ProteinPerServing))).
			Round(3)
		ranks = append(ranks, ValueFoodRank{
			Name:               item.Name,
			CostPerGramProtein: perGram,
			ProteinPerServing:  item.ProteinPerServing,
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].CostPerGramProtein.LessThan(ranks[j].CostPerGramProtein)
	})
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}
