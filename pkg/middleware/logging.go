package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doctorprofile/profile-api/pkg/logger"
)

// RequestLogger logs one line per request through the shared leveled logger.
// Server errors are logged at error level, client errors at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"bytes", c.Writer.Size(),
			"latency", time.Since(start).Round(time.Microsecond),
			"ip", c.ClientIP(),
		)
		switch {
		case status >= 500:
			entry.Errorf("request")
		case status >= 400:
			entry.Warnf("request")
		default:
			entry.Infof("request")
		}
	}
}
