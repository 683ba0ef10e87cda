package controllers

import (
	"net/http"
	"strconv"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

// pushTotals re-checks rollover, recomputes today's totals and fans them
// out to the user's open websocket sessions. Called after every entry
// mutation.
func pushTotals(userID uint) {
	agg := services.NewAggregationService(config.DB)
	if err := agg.CatchUp(userID); err != nil {
		config.LogError(config.GetLogger(), "controllers", "pushTotals", "rollover catch-up", userID, err)
	}
	totals, err := agg.TodayTotals(userID)
	if err != nil {
		config.LogError(config.GetLogger(), "controllers", "pushTotals", "today totals", userID, err)
		return
	}
	Hub.BroadcastTotals(userID, totals)
}

func AddFoodLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	entry, err := svc.Add(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pushTotals(userID)
	c.JSON(http.StatusCreated, entry)
}

func ListFoodLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewFoodLogService(config.DB)
	logs, err := svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func ListTodayFoodLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewFoodLogService(config.DB)
	logs, err := svc.ListToday(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetTodayTotals serves the live dashboard numbers. The rollover catch-up
// runs first so an entry from an elapsed day is archived and out of the
// live window before totals are computed.
func GetTodayTotals(c *gin.Context) {
	userID := c.GetUint("userID")

	agg := services.NewAggregationService(config.DB)
	if err := agg.CatchUp(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totals, err := agg.TodayTotals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

func UpdateFoodLog(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req services.FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	entry, err := svc.Update(userID, uint(id), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}

	pushTotals(userID)
	c.JSON(http.StatusOK, entry)
}

func DeleteFoodLog(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	if err := svc.Delete(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	pushTotals(userID)
	c.Status(http.StatusNoContent)
}

func ClearFoodLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewFoodLogService(config.DB)
	if err := svc.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pushTotals(userID)
	c.Status(http.StatusNoContent)
}
