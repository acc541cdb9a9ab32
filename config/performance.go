package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PerformanceLogger logs every request with its latency and warns about
// requests slower than threshold. A zero threshold disables the warning.
func PerformanceLogger(logger *zap.Logger, threshold time.Duration) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
		}
		logger.Info("request", fields...)

		if threshold > 0 && latency > threshold {
			logger.Warn("slow request", fields...)
		}
	}
}
