package middleware

import (
	"time"

	"bleck-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger places a request scoped logger on the gin and request contexts and writes one access line
// per request. It must run after RequestID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		fields := logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}
		if id, ok := c.Get(logger.RequestIDKey); ok {
			fields[logger.RequestIDKey] = id
		}
		entry := logger.New().WithFields(fields)

		c.Set(logger.ContextLoggerKey, entry)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), entry))

		c.Next()

		status := c.Writer.Status()
		access := entry.WithFields(logrus.Fields{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			access = access.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			access.Error("Request failed")
		case status >= 400:
			access.Warn("Request rejected")
		default:
			access.Info("Request handled")
		}
	}
}
