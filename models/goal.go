package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal holds a user's daily targets. Changing a goal affects only the live
// "today" view and future archival; archived DayHistory rows keep the
// snapshot that was active when the day closed.
type Goal struct {
	gorm.Model
	UserID   uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories int             `json:"calories"` // e.g. 2000 kcal
	Protein  int             `json:"protein"`  // e.g. 150 g
	Budget   decimal.Decimal `gorm:"type:decimal(10,2)" json:"budget"` // e.g. $15/day
}

// Defaults applied when a user has never set goals.
const (
	DefaultGoalCalories = 2000
	DefaultGoalProtein  = 150
)

var DefaultGoalBudget = decimal.NewFromInt(15)

func DefaultGoal(userID uint) Goal {
	return Goal{
		UserID:   userID,
		Calories: DefaultGoalCalories,
		Protein:  DefaultGoalProtein,
		Budget:   DefaultGoalBudget,
	}
}
