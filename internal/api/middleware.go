package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/telemetry"
)

// RecoveryMiddleware converts panics into a generic 500 response. Stack
// traces stay in the logs, never in the response body.
func RecoveryMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("request panicked",
					logging.String("path", c.Request.URL.Path),
					logging.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ErrorResponse{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}

// MetricsMiddleware counts served requests by route and status.
func MetricsMiddleware(tp *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		tp.RecordHTTPRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}

// RateLimitMiddleware rejects requests beyond the configured rate with 429.
// A single shared limiter bounds total load on the process.
func RateLimitMiddleware(rps, burst int, logger logging.Logger) gin.HandlerFunc {
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("request rate limited",
				logging.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ErrorResponse{Error: "Too many requests"})
			return
		}
		c.Next()
	}
}
