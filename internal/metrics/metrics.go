package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evstat_table_cache_hits_total",
		Help: "Table cache lookups served from memory.",
	}, []string{"query"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evstat_table_cache_misses_total",
		Help: "Table cache lookups that went to the database.",
	}, []string{"query"})

	LoadErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evstat_table_load_errors_total",
		Help: "Failed table loads.",
	}, []string{"query"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evstat_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// GinMiddleware records request latency keyed by the matched route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
