package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	postsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of posts created",
		},
	)

	commentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		},
	)

	pageCacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_events_total",
			Help: "Page cache hits and misses",
		},
		[]string{"result"},
	)
)

func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			status,
			serviceName,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			serviceName,
		).Observe(duration)
	}
}

func RecordPostCreated() {
	postsCreatedTotal.Inc()
}

func RecordCommentCreated() {
	commentsCreatedTotal.Inc()
}

func RecordPageCacheHit() {
	pageCacheEvents.WithLabelValues("hit").Inc()
}

func RecordPageCacheMiss() {
	pageCacheEvents.WithLabelValues("miss").Inc()
}
