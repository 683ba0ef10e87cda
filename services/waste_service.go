package services

import (
	"errors"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WasteService struct {
	db *gorm.DB
}

func NewWasteService(db *gorm.DB) *WasteService {
	return &WasteService{db: db}
}

type WasteLogRequest struct {
	PantryItemID *uint           `json:"pantry_item_id,omitempty"`
	ItemName     string          `json:"item_name" binding:"required"`
	AmountWasted float64         `json:"amount_wasted" binding:"gt=0"`
	CostLost     decimal.Decimal `json:"cost_lost"`
	WasteReason  string          `json:"waste_reason,omitempty"`
	IsExpired    bool            `json:"is_expired"`
}

// List returns the most recent waste entries plus the all-time cost lost.
func (s *WasteService) List(userID uint, limit int) ([]models.WasteLog, decimal.Decimal, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.WasteLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range logs {
		total = total.Add(l.CostLost)
	}
	return logs, total.Round(2), nil
}

func (s *WasteService) Add(userID uint, req WasteLogRequest) (*models.WasteLog, error) {
	if req.CostLost.IsNegative() {
		return nil, errors.New("cost lost cannot be negative")
	}

	log := models.WasteLog{
		UserID:       userID,
		PantryItemID: req.PantryItemID,
		ItemName:     req.ItemName,
		AmountWasted: req.AmountWasted,
		CostLost:     req.CostLost.Round(2),
		WasteReason:  req.WasteReason,
		IsExpired:    req.IsExpired,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *WasteService) Delete(userID, id uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WasteLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("waste log not found")
	}
	return nil
}
