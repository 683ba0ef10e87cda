package controllers

import (
	"net/http"
	"strconv"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
)

func pantryItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func ListPantry(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewPantryService(config.DB)
	items, err := svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func AddPantryItem(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Add(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdatePantryItem(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pantryItemID(c)
	if !ok {
		return
	}

	var req services.PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Update(userID, id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pantry item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeletePantryItem(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pantryItemID(c)
	if !ok {
		return
	}

	svc := services.NewPantryService(config.DB)
	if err := svc.Delete(userID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func RestockPantryItem(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pantryItemID(c)
	if !ok {
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Restock(userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pantry item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ConsumePantryItem logs servings from a pantry item as a food entry with
// the item's per-serving values and cost share.
func ConsumePantryItem(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pantryItemID(c)
	if !ok {
		return
	}

	var body struct {
		Servings float64 `json:"servings" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPantryService(config.DB)
	entry, err := svc.Consume(userID, id, body.Servings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pushTotals(userID)
	c.JSON(http.StatusCreated, entry)
}

func GetPantryItemPrices(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pantryItemID(c)
	if !ok {
		return
	}

	svc := services.NewPantryService(config.DB)
	rows, err := svc.PriceHistory(userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
