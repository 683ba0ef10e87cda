package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"

	"github.com/gin-gonic/gin"
)

// RateLimit caps how often one user can hit an endpoint, counted per
// minute in Redis. With Redis down the limiter fails open: the analyze
// endpoint already degrades to the free local estimator, so an occasional
// unthrottled AI call is the cheaper failure.
func RateLimit(maxPerMinute int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		key := fmt.Sprintf("ratelimit:%s:%d:%s",
			c.FullPath(), userID, time.Now().Format("1504"))

		n, err := config.IncrWithExpiry(key, time.Minute)
		if err != nil {
			config.LogError(config.GetLogger(), "middlewares", "RateLimit", "redis incr", key, err)
			c.Next()
			return
		}
		if n > maxPerMinute {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again in a moment.",
			})
			return
		}
		c.Next()
	}
}
