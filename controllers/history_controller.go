package controllers

import (
	"net/http"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

// GetHistory lists archived days, newest first. Catch-up runs first so a
// day that just ended shows up without waiting for another entry write.
// Days with no entries have no row; "no row" means no data, not zero.
func GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	agg := services.NewAggregationService(config.DB)
	if err := agg.CatchUp(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows, err := agg.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
