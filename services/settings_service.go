package services

import (
	"errors"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"gorm.io/gorm"
)

// GetSettings returns the user's app settings, creating the defaults
// (notifications off, dark mode on) on first read.
func GetSettings(userID uint) (models.Settings, error) {
	var s models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.Settings{UserID: userID, Notifications: false, DarkMode: true}
		if err := config.DB.Create(&s).Error; err != nil {
			return s, err
		}
		return s, nil
	}
	return s, err
}

func UpdateSettings(userID uint, notifications, darkMode bool) (models.Settings, error) {
	s, err := GetSettings(userID)
	if err != nil {
		return s, err
	}
	s.Notifications = notifications
	s.DarkMode = darkMode
	return s, config.DB.Save(&s).Error
}
