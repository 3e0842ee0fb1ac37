package middleware

import (
	"strconv"
	"time"

	"plaiz_studio/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency labelled by the route template, not the raw
// path, to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
