package main

import (
	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/routes"
)

func main() {
	config.InitDB()
	config.ConnectRedis()
	r := routes.SetupRouter()
	r.Run(":8080")
}
