package middleware

import (
	"strconv"
	"time"

	"tablebook/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route counters and latency. Uses the
// route template rather than the raw path to keep label cardinality flat.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		monitoring.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(startTime),
		)
	}
}
