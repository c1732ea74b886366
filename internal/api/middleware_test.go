//nolint:testpackage // Testing route wiring requires same package access
package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
)

func TestRecoveryMiddleware_ConvertsPanicTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RecoveryMiddleware(logging.NewNop()))
	router.GET("/boom", func(c *gin.Context) {
		panic("kaput")
	})

	rec := doRequest(router, http.MethodGet, "/boom", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "kaput")
}

func TestRateLimitMiddleware_RejectsBeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(1, 2, logging.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := doRequest(router, http.MethodGet, "/ping", "")
	second := doRequest(router, http.MethodGet, "/ping", "")
	third := doRequest(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "Too many requests")
}

func TestRateLimitMiddleware_DefaultsBurstToRPS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(3, 0, logging.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rec := doRequest(router, http.MethodGet, "/ping", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
	rec := doRequest(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
