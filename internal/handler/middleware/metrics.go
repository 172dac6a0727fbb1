package middleware

import (
	"strconv"
	"time"

	"hotel-backoffice/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics labels requests by route template so ids do not explode cardinality.
func HTTPMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
