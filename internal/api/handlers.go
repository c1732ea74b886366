package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/analyzer"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/processor"
)

// Handler handles HTTP requests for the diff-analyzer API.
type Handler struct {
	analyzer       *analyzer.Analyzer
	batchProcessor *processor.BatchProcessor
	serviceName    string
	maxBatchSize   int
	logger         logging.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	a *analyzer.Analyzer,
	batchProcessor *processor.BatchProcessor,
	serviceName string,
	maxBatchSize int,
	logger logging.Logger,
) *Handler {
	return &Handler{
		analyzer:       a,
		batchProcessor: batchProcessor,
		serviceName:    serviceName,
		maxBatchSize:   maxBatchSize,
		logger:         logger,
	}
}

// AnalyzeCode handles POST /analyze-code.
func (h *Handler) AnalyzeCode(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No JSON data provided"})
		return
	}

	if req.FileName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fileName is required"})
		return
	}
	if req.AddedCode == "" && req.DeletedCode == "" && req.FullDiff == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "At least one of addedCode, deletedCode, or fullDiff is required",
		})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.Diff())
	if err != nil {
		h.logger.Error("analysis failed",
			logging.String("file_name", req.FileName),
			logging.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	h.logger.Info("diff analyzed",
		logging.String("file_name", req.FileName),
		logging.String("language", result.Language),
		logging.String("code_type", result.CodeType),
	)

	c.JSON(http.StatusOK, result)
}

// AnalyzeBatch handles POST /analyze-batch.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "files array is required"})
		return
	}

	if req.Files == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "files array is required"})
		return
	}
	if len(req.Files) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "batch size exceeds limit"})
		return
	}

	h.logger.Info("batch analysis requested", logging.Int("batch_size", len(req.Files)))

	results := h.batchProcessor.Process(c.Request.Context(), req.Files)

	items := make([]any, len(results))
	for i, r := range results {
		items[i] = batchItemResponse(r.FileName, r.Result, r.Err)
	}

	c.JSON(http.StatusOK, BatchAnalyzeResponse{Results: items})
}

// ListLanguages handles GET /languages.
func (h *Handler) ListLanguages(c *gin.Context) {
	names := h.analyzer.Rules().LanguageNames()
	c.JSON(http.StatusOK, LanguagesResponse{
		Languages: names,
		Total:     len(names),
	})
}

// ListPatterns handles GET /patterns.
func (h *Handler) ListPatterns(c *gin.Context) {
	names := h.analyzer.Rules().CodeTypeNames()
	c.JSON(http.StatusOK, PatternsResponse{
		Patterns: names,
		Total:    len(names),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		Service:   h.serviceName,
	})
}
