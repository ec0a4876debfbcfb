package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-latex/internal/shared/metrics"
	"resume-latex/internal/shared/telemetry"
)

// GenerationIDKey is set by handlers that record a generation.
const GenerationIDKey = "generationId"

// Logging emits a structured log and records HTTP metrics per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status, latency)
		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"route":         c.FullPath(),
			"status":        status,
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"bytes_out":     c.Writer.Size(),
			"generation_id": c.GetString(GenerationIDKey),
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
