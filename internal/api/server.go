package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/config"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/telemetry"
)

// Server wraps the HTTP server with graceful shutdown support.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds the gin engine, registers all routes and middleware, and
// returns a server ready to start.
func NewServer(handler *Handler, cfg *config.Config, tp *telemetry.Provider, logger logging.Logger) *Server {
	if cfg.Service.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RecoveryMiddleware(logger))
	if tp != nil {
		router.Use(MetricsMiddleware(tp))
	}
	if cfg.RateLimit.Enabled {
		router.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger))
	}

	SetupRoutes(router, handler, tp)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
			Handler:      router,
			ReadTimeout:  cfg.Service.ReadTimeout,
			WriteTimeout: cfg.Service.WriteTimeout,
			IdleTimeout:  cfg.Service.IdleTimeout,
		},
		logger: logger,
	}
}

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	router.GET("/health", handler.HealthCheck)

	router.POST("/analyze-code", handler.AnalyzeCode)
	router.POST("/analyze-batch", handler.AnalyzeBatch)

	router.GET("/languages", handler.ListLanguages)
	router.GET("/patterns", handler.ListPatterns)

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Endpoint not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})
}

// Start begins serving requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("http server starting", logging.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
