// Package middleware provides the gin middleware shared by every route:
// request ids, HTTP metrics and the edge redirect/admin gate.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/metrics"
)

// Probes are scraped constantly and would drown the page traffic.
var unmeasured = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
	"/ready":   {},
}

// Metrics records request count, duration and in-flight requests. Paths
// are labelled by route template (/blog/:year/:month/:slug) so post slugs
// do not become label values. Requests that match no route are labelled
// "edge_redirect" when the edge middleware redirected them and
// "unmatched" otherwise.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := unmeasured[c.FullPath()]; skip {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
			if status == http.StatusMovedPermanently || status == http.StatusFound {
				path = "edge_redirect"
			}
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
