package controllers

import (
	"net/http"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, progress, err := services.GetGoalsAndProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Calories int             `json:"calories" binding:"required,gt=0"`
		Protein  int             `json:"protein" binding:"required,gt=0"`
		Budget   decimal.Decimal `json:"budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertGoals(userID, req.Calories, req.Protein, req.Budget); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
