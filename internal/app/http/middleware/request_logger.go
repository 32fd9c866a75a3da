package middleware

import (
	"time"

	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceHeader = "X-Trace-ID"

// RequestLogger attaches a per-request logger carrying a trace id to the
// request context and logs each request's outcome.
func RequestLogger(base logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}
		c.Header(TraceHeader, traceID)

		reqLogger := base.WithFields(logging.Fields{"trace_id": traceID})
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		fields := logging.Fields{
			"http_method": c.Request.Method,
			"http_path":   c.FullPath(),
			"status_code": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			reqLogger.Warn("Request failed", fields)
			return
		}
		reqLogger.Info("Request finished", fields)
	}
}
