package controllers

import (
	"net/http"
	"strings"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeFood estimates nutrition and cost for a free-text meal
// description. The AI gateway is tried first; the local keyword estimator
// answers when it can't, so this endpoint never fails for estimation
// reasons. The reply is an unconfirmed estimate the client may edit before
// logging it.
func AnalyzeFood(c *gin.Context) {
	var body struct {
		FoodDescription string `json:"food_description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trimmed := strings.TrimSpace(body.FoodDescription)
	if trimmed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food description is required"})
		return
	}
	if len(trimmed) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food description too long (max 500 characters)"})
		return
	}

	svc := services.NewAnalyzeService()
	estimate, source := svc.Analyze(trimmed)
	c.JSON(http.StatusOK, gin.H{
		"estimate": estimate,
		"source":   source,
	})
}
