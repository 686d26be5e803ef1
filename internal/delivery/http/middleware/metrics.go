package middleware

import (
	"strconv"
	"time"

	"portfolio-site/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records RED metrics per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Route pattern instead of raw path to keep label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPDuration.WithLabelValues(path, c.Request.Method, status).Observe(time.Since(start).Seconds())
		metrics.HTTPRequests.WithLabelValues(path, c.Request.Method, status).Inc()
	}
}
