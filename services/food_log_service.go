package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// FoodLogRequest carries confirmed estimate values (possibly edited by the
// user). Edited fields are taken literally; nothing is re-estimated here.
type FoodLogRequest struct {
	Description    string          `json:"description" binding:"required,max=500"`
	Calories       int             `json:"calories" binding:"gte=0"`
	Protein        int             `json:"protein" binding:"gte=0"`
	Cost           decimal.Decimal `json:"cost"`
	PantryItemID   *uint           `json:"pantry_item_id,omitempty"`
	AmountConsumed *float64        `json:"amount_consumed,omitempty"`
}

func (s *FoodLogService) Add(userID uint, req FoodLogRequest) (*models.FoodLog, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description is required")
	}
	if req.Cost.IsNegative() {
		return nil, errors.New("cost cannot be negative")
	}

	entry := models.FoodLog{
		UserID:         userID,
		Description:    req.Description,
		Calories:       req.Calories,
		Protein:        req.Protein,
		Cost:           req.Cost.Round(2),
		PantryItemID:   req.PantryItemID,
		AmountConsumed: req.AmountConsumed,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *FoodLogService) List(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// ListToday returns the current local calendar day's entries, newest first.
func (s *FoodLogService) ListToday(userID uint) ([]models.FoodLog, error) {
	start := DayStart(time.Now())
	end := start.Add(24 * time.Hour)

	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// Update rewrites an entry's fields. The timestamp (CreatedAt) is immutable:
// an edited entry stays in the day it was originally logged.
func (s *FoodLogService) Update(userID, id uint, req FoodLogRequest) (*models.FoodLog, error) {
	var entry models.FoodLog
	if err := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	if req.Cost.IsNegative() {
		return nil, errors.New("cost cannot be negative")
	}

	err := s.db.Model(&entry).
		Select("description", "calories", "protein", "cost").
		Updates(map[string]interface{}{
			"description": req.Description,
			"calories":    req.Calories,
			"protein":     req.Protein,
			"cost":        req.Cost.Round(2),
		}).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *FoodLogService) Delete(userID, id uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food log %d not found", id)
	}
	return nil
}

// Clear removes every entry belonging to the user.
func (s *FoodLogService) Clear(userID uint) error {
	return s.db.
		Where("user_id = ?", userID).
		Delete(&models.FoodLog{}).Error
}
