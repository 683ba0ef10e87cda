package routes

import (
	"github.com/KevinWehrle/budgetmacro-78bf3b04/controllers"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Nutrition and cost estimation
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/analyze", middlewares.RateLimit(10), controllers.AnalyzeFood)
	}

	// Food log entries and daily totals
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.GET("", controllers.ListFoodLogs)
		logs.POST("", controllers.AddFoodLog)
		logs.GET("/today", controllers.ListTodayFoodLogs)
		logs.GET("/today/totals", controllers.GetTodayTotals)
		logs.PUT("/:id", controllers.UpdateFoodLog)
		logs.DELETE("/:id", controllers.DeleteFoodLog)
		logs.DELETE("", controllers.ClearFoodLogs)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.UpdateGoals)
	}

	history := r.Group("/history")
	history.Use(middlewares.AuthMiddleware())
	{
		history.GET("", controllers.GetHistory)
	}

	pantry := r.Group("/pantry")
	pantry.Use(middlewares.AuthMiddleware())
	{
		pantry.GET("", controllers.ListPantry)
		pantry.POST("", controllers.AddPantryItem)
		pantry.PUT("/:id", controllers.UpdatePantryItem)
		pantry.DELETE("/:id", controllers.DeletePantryItem)
		pantry.POST("/:id/restock", controllers.RestockPantryItem)
		pantry.POST("/:id/consume", controllers.ConsumePantryItem)
		pantry.GET("/:id/prices", controllers.GetPantryItemPrices)
	}

	stores := r.Group("/stores")
	stores.Use(middlewares.AuthMiddleware())
	{
		stores.GET("", controllers.ListStores)
		stores.POST("", controllers.AddStore)
		stores.PUT("/:id", controllers.UpdateStore)
		stores.DELETE("/:id", controllers.DeleteStore)
	}

	waste := r.Group("/waste")
	waste.Use(middlewares.AuthMiddleware())
	{
		waste.GET("", controllers.ListWasteLogs)
		waste.POST("", controllers.AddWasteLog)
		waste.DELETE("/:id", controllers.DeleteWasteLog)
	}

	insights := r.Group("/insights")
	insights.Use(middlewares.AuthMiddleware())
	{
		insights.GET("", controllers.GetInsights)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/value", controllers.ListValueFoods)
	}

	settings := r.Group("/settings")
	settings.Use(middlewares.AuthMiddleware())
	{
		settings.GET("", controllers.GetSettings)
		settings.PUT("", controllers.UpdateSettings)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", controllers.WSHandler)
	}

	return r
}
