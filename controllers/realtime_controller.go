package controllers

import (
	"net/http"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var Hub = services.NewRealtimeHub()

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler upgrades an authenticated request to a websocket session and
// sends the current totals immediately, then whatever pushTotals broadcasts.
// Incoming frames are drained only to notice the close.
func WSHandler(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.LogError(config.GetLogger(), "controllers", "WSHandler", "websocket upgrade", userID, err)
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	Hub.Register(client)

	agg := services.NewAggregationService(config.DB)
	if totals, err := agg.TodayTotals(userID); err == nil {
		Hub.BroadcastTotals(userID, totals)
	}

	go func() {
		defer Hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
