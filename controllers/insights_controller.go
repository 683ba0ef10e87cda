package controllers

import (
	"net/http"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

// GetInsights serves the spending-efficiency dashboard: cost per 100g
// protein over the last two weeks, pantry runway and the best-value pantry
// items.
func GetInsights(c *gin.Context) {
	userID := c.GetUint("userID")

	agg := services.NewAggregationService(config.DB)
	if err := agg.CatchUp(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewInsightsService(config.DB)
	summary, err := svc.Summary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListValueFoods returns the static protein-per-dollar reference table.
func ListValueFoods(c *gin.Context) {
	c.JSON(http.StatusOK, services.ListValueFoods())
}
