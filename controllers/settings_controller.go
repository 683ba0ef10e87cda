package controllers

import (
	"net/http"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

func GetSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	settings, err := services.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Notifications *bool `json:"notifications" binding:"required"`
		DarkMode      *bool `json:"dark_mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.UpdateSettings(userID, *req.Notifications, *req.DarkMode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
