package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DayHistory is the immutable archive of one completed calendar day.
//
// Grain: (user_id, date). A row is written at most once per date, and only
// for dates that had at least one food log entry. Values are derived data:
// they can be rebuilt from food_logs and waste_logs, but the goal columns
// are a snapshot of the targets active at archival time and are not
// recoverable from elsewhere.
type DayHistory struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_day_history_user_date,priority:1" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_day_history_user_date,priority:2" json:"date"`

	Calories int             `json:"calories"`
	Protein  int             `json:"protein"`
	Cost     decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`

	GoalCalories int             `json:"goal_calories"`
	GoalProtein  int             `json:"goal_protein"`
	GoalBudget   decimal.Decimal `gorm:"type:decimal(10,2)" json:"goal_budget"`

	WasteCost decimal.Decimal `gorm:"type:decimal(10,2)" json:"waste_cost"`
}
