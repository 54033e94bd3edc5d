package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oms",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"handler", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "oms",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"handler"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration)
}

// Metrics 按路由模板统计请求数与耗时，未匹配路由记为 unmatched
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		httpRequests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(handler).Observe(float64(time.Since(start).Microseconds()) / 1000)
	}
}
