package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"oms/internal/app/pkg/logger"
)

// Logger 访问日志
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			log.ErrorContext(c.Request.Context(), "HTTP request", fields...)
		case status >= 400:
			log.WarnContext(c.Request.Context(), "HTTP request", fields...)
		default:
			log.InfoContext(c.Request.Context(), "HTTP request", fields...)
		}
	}
}
