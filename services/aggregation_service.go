package services

import (
	"errors"
	"sort"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals is the running sum of one calendar day's entries.
type Totals struct {
	Calories int             `json:"calories"`
	Protein  int             `json:"protein"`
	Cost     decimal.Decimal `json:"cost"`
}

// AggregationService computes live daily totals and freezes completed days
// into day_histories. Day membership is local calendar-day equality, not a
// rolling 24h window: an entry at 23:59:59 and one at 00:00:01 the next day
// belong to different days.
type AggregationService struct {
	db *gorm.DB
}

func NewAggregationService(db *gorm.DB) *AggregationService {
	return &AggregationService{db: db}
}

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameLocalDay reports whether two instants fall on the same local calendar day.
func SameLocalDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SumEntries folds a slice of entries into totals. Pure; callers hand it a
// consistent snapshot so a concurrent delete can't tear the sum.
func SumEntries(entries []models.FoodLog) Totals {
	t := Totals{Cost: decimal.Zero}
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Cost = t.Cost.Add(e.Cost)
	}
	t.Cost = t.Cost.Round(2)
	return t
}

// BucketByDay groups entries by their local calendar day, keyed by the day's
// midnight. Returned keys are sorted ascending so archival order is stable.
func BucketByDay(entries []models.FoodLog) (map[time.Time][]models.FoodLog, []time.Time) {
	buckets := map[time.Time][]models.FoodLog{}
	for _, e := range entries {
		day := DayStart(e.CreatedAt)
		buckets[day] = append(buckets[day], e)
	}
	days := make([]time.Time, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return buckets, days
}

// TodayTotals sums the current local calendar day's entries.
func (s *AggregationService) TodayTotals(userID uint) (Totals, error) {
	return s.TotalsForDay(userID, time.Now())
}

// TotalsForDay sums the entries of the calendar day containing t.
func (s *AggregationService) TotalsForDay(userID uint, t time.Time) (Totals, error) {
	start := DayStart(t)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Find(&entries).Error
	if err != nil {
		return Totals{Cost: decimal.Zero}, err
	}
	return SumEntries(entries), nil
}

// CatchUp archives every elapsed calendar day that still has un-archived
// entries. It is level-triggered: controllers call it opportunistically
// before serving totals or history and after entry writes, so a multi-day
// gap (app unused for a week) is healed in one pass rather than only the
// most recent day.
//
// Idempotent: a day that already has a day_histories row is skipped, so
// re-running after a partial failure just retries the missing days.
func (s *AggregationService) CatchUp(userID uint) error {
	today := DayStart(time.Now())

	var entries []models.FoodLog
	err := s.db.
		Where("user_id = ? AND created_at < ?", userID, today).
		Find(&entries).Error
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	goal, err := currentGoal(s.db, userID)
	if err != nil {
		return err
	}

	buckets, days := BucketByDay(entries)
	for _, day := range days {
		if err := s.archiveDay(userID, day, SumEntries(buckets[day]), goal); err != nil {
			// leave the remaining days for the next trigger; skipping
			// silently would lose history for good
			return err
		}
	}
	return nil
}

// archiveDay writes the immutable archive row for one elapsed day, once.
func (s *AggregationService) archiveDay(userID uint, day time.Time, sums Totals, goal models.Goal) error {
	var existing models.DayHistory
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		First(&existing).Error
	if err == nil {
		return nil // already archived; duplicate attempts are a no-op
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	wasteCost, err := s.wasteCostForDay(userID, day)
	if err != nil {
		return err
	}

	row := models.DayHistory{
		UserID:       userID,
		Date:         day,
		Calories:     sums.Calories,
		Protein:      sums.Protein,
		Cost:         sums.Cost,
		GoalCalories: goal.Calories,
		GoalProtein:  goal.Protein,
		GoalBudget:   goal.Budget,
		WasteCost:    wasteCost,
	}
	return s.db.Create(&row).Error
}

func (s *AggregationService) wasteCostForDay(userID uint, day time.Time) (decimal.Decimal, error) {
	end := day.Add(24 * time.Hour)
	var logs []models.WasteLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, day, end).
		Find(&logs).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, w := range logs {
		total = total.Add(w.CostLost)
	}
	return total.Round(2), nil
}

// History returns archived days, newest first.
func (s *AggregationService) History(userID uint) ([]models.DayHistory, error) {
	var rows []models.DayHistory
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&rows).Error
	return rows, err
}

func currentGoal(db *gorm.DB, userID uint) (models.Goal, error) {
	var goal models.Goal
	err := db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultGoal(userID), nil
		}
		return goal, err
	}
	return goal, nil
}

// NewDefaultAggregationService wires the service against the global DB.
func NewDefaultAggregationService() *AggregationService {
	return NewAggregationService(config.DB)
}
