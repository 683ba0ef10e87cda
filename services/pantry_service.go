package services

import (
	"errors"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

type PantryItemRequest struct {
	Name               string          `json:"name" binding:"required"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalServings      float64         `json:"total_servings"`
	ProteinPerServing  int             `json:"protein_per_serving" binding:"gte=0"`
	CaloriesPerServing int             `json:"calories_per_serving" binding:"gte=0"`
	StoreID            *uint           `json:"store_id,omitempty"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
}

func (s *PantryService) List(userID uint) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *PantryService) Add(userID uint, req PantryItemRequest) (*models.PantryItem, error) {
	if req.TotalCost.IsNegative() {
		return nil, errors.New("total cost cannot be negative")
	}
	servings := req.TotalServings
	if servings <= 0 {
		servings = 1
	}

	item := models.PantryItem{
		UserID:             userID,
		StoreID:            req.StoreID,
		Name:               req.Name,
		TotalCost:          req.TotalCost.Round(2),
		TotalServings:      servings,
		CurrentServings:    servings,
		ProteinPerServing:  req.ProteinPerServing,
		CaloriesPerServing: req.CaloriesPerServing,
		ServingUnit:        "serving",
		ExpiresAt:          req.ExpiresAt,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	s.recordPrice(&item)
	return &item, nil
}

func (s *PantryService) Update(userID, id uint, req PantryItemRequest) (*models.PantryItem, error) {
	var item models.PantryItem
	if err := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	if req.TotalCost.IsNegative() {
		return nil, errors.New("total cost cannot be negative")
	}

	priceChanged := !item.TotalCost.Equal(req.TotalCost.Round(2))

	item.Name = req.Name
	item.TotalCost = req.TotalCost.Round(2)
	if req.TotalServings > 0 {
		item.TotalServings = req.TotalServings
	}
	item.ProteinPerServing = req.ProteinPerServing
	item.CaloriesPerServing = req.CaloriesPerServing
	item.StoreID = req.StoreID
	item.ExpiresAt = req.ExpiresAt

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	if priceChanged {
		s.recordPrice(&item)
	}
	return &item, nil
}

func (s *PantryService) Delete(userID, id uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PantryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("pantry item not found")
	}
	return nil
}

// Restock refills an item to its full serving count and puts it back in
// stock, for repeat grocery purchases.
func (s *PantryService) Restock(userID, id uint) (*models.PantryItem, error) {
	var item models.PantryItem
	if err := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}

	item.CurrentServings = item.TotalServings
	item.IsOutOfStock = false
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Consume takes servings out of a pantry item and logs them as a food
// entry carrying the item's per-serving nutrition and cost share. The
// decrement and the log write happen in one transaction so a failed write
// can't leave the pantry count and the log disagreeing.
func (s *PantryService) Consume(userID, id uint, servings float64) (*models.FoodLog, error) {
	if servings <= 0 {
		return nil, errors.New("servings must be positive")
	}

	var entry *models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.PantryItem
		if err := tx.
			Where("id = ? AND user_id = ?", id, userID).
			First(&item).Error; err != nil {
			return err
		}
		if item.IsOutOfStock || item.CurrentServings <= 0 {
			return errors.New("item is out of stock")
		}
		if servings > item.CurrentServings {
			servings = item.CurrentServings
		}

		item.CurrentServings -= servings
		if item.CurrentServings <= 0 {
			item.CurrentServings = 0
			item.IsOutOfStock = true
		}
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		cost := item.CostPerServing().Mul(decimal.NewFromFloat(servings)).Round(2)
		taken := servings
		entry = &models.FoodLog{
			UserID:         userID,
			Description:    item.Name,
			Calories:       int(float64(item.CaloriesPerServing) * servings),
			Protein:        int(float64(item.ProteinPerServing) * servings),
			Cost:           cost,
			PantryItemID:   &item.ID,
			AmountConsumed: &taken,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PantryService) PriceHistory(userID, itemID uint) ([]models.PriceRecord, error) {
	var rows []models.PriceRecord
	err := s.db.
		Where("user_id = ? AND pantry_item_id = ?", userID, itemID).
		Order("date_recorded DESC").
		Find(&rows).Error
	return rows, err
}

// recordPrice appends a price observation; failures are logged upstream by
// callers that care, a lost observation never blocks the pantry write.
func (s *PantryService) recordPrice(item *models.PantryItem) {
	rec := models.PriceRecord{
		UserID:       item.UserID,
		PantryItemID: item.ID,
		CostAtTime:   item.TotalCost,
		DateRecorded: time.Now(),
	}
	_ = s.db.Create(&rec).Error
}
