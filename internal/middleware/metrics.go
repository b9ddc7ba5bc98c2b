package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/fund_balance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request counts and latency per matched route.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.With(
			"method", c.Request.Method,
			"route", route,
			"status", strconv.Itoa(c.Writer.Status()),
		).Add(1)
		metrics.HTTPDuration.With("method", c.Request.Method, "route", route).
			Observe(time.Since(start).Seconds())
	}
}
