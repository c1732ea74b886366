//nolint:testpackage // Testing route wiring requires same package access
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/analyzer"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/processor"
)

func newTestRouter(maxBatchSize int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logging.NewNop()
	a := analyzer.New(logger, nil)
	bp := processor.NewBatchProcessor(a, 4, logger, nil)
	handler := NewHandler(a, bp, "diff-analyzer", maxBatchSize, logger)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RecoveryMiddleware(logger))
	SetupRoutes(router, handler, nil)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeCode_Success(t *testing.T) {
	router := newTestRouter(100)

	body := `{"fileName":"test.py","addedCode":"unittest coverage","linesAdded":10}`
	rec := doRequest(router, http.MethodPost, "/analyze-code", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "python", result["language"])
	assert.Equal(t, "general_code", result["codeType"])
	assert.Equal(t, "Testing", result["functionality"])
	assert.Equal(t, "low", result["complexity"])
	assert.Equal(t, "Added 10 lines of code in Python for testing. Code complexity is low.", result["summary"])
	assert.InDelta(t, 0.3, result["confidence"], 1e-9)
}

func TestAnalyzeCode_RejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodPost, "/analyze-code", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No JSON data provided")
}

func TestAnalyzeCode_RequiresFileName(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodPost, "/analyze-code", `{"addedCode":"x = 1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fileName is required")
}

func TestAnalyzeCode_RequiresSomeBody(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodPost, "/analyze-code", `{"fileName":"a.py"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least one of addedCode, deletedCode, or fullDiff is required")
}

func TestAnalyzeBatch_Success(t *testing.T) {
	router := newTestRouter(100)

	body := `{"files":[
		{"fileName":"auth.py","addedCode":"def login(password):\n    return token\n","linesAdded":2},
		{"fileName":"query.sql","addedCode":"SELECT id FROM users\n","linesAdded":1}
	]}`
	rec := doRequest(router, http.MethodPost, "/analyze-batch", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	assert.Equal(t, "auth.py", resp.Results[0]["fileName"])
	assert.Equal(t, "python", resp.Results[0]["language"])
	assert.Equal(t, "query.sql", resp.Results[1]["fileName"])
	assert.Equal(t, "sql", resp.Results[1]["language"])
}

func TestAnalyzeBatch_NullItemIsIsolated(t *testing.T) {
	router := newTestRouter(100)

	body := `{"files":[
		{"fileName":"ok.py","addedCode":"x = 1","linesAdded":1},
		null,
		{"fileName":"also_ok.py","addedCode":"y = 2","linesAdded":1}
	]}`
	rec := doRequest(router, http.MethodPost, "/analyze-batch", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)

	assert.NotContains(t, resp.Results[0], "error")
	assert.Contains(t, resp.Results[1]["error"], "analysis failed")
	assert.NotContains(t, resp.Results[2], "error")
	assert.Equal(t, "also_ok.py", resp.Results[2]["fileName"])
}

func TestAnalyzeBatch_RequiresFilesArray(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodPost, "/analyze-batch", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "files array is required")
}

func TestAnalyzeBatch_EnforcesSizeLimit(t *testing.T) {
	router := newTestRouter(2)

	body := `{"files":[
		{"fileName":"a.py","addedCode":"x"},
		{"fileName":"b.py","addedCode":"y"},
		{"fileName":"c.py","addedCode":"z"}
	]}`
	rec := doRequest(router, http.MethodPost, "/analyze-batch", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "batch size exceeds limit")
}

func TestAnalyzeBatch_EmptyFilesArray(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodPost, "/analyze-batch", `{"files":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
}

func TestListLanguages(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodGet, "/languages", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LanguagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 16, resp.Total)
	require.NotEmpty(t, resp.Languages)
	assert.Equal(t, "python", resp.Languages[0])
}

func TestListPatterns(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodGet, "/patterns", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PatternsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 13, resp.Total)
	require.NotEmpty(t, resp.Patterns)
	assert.Equal(t, "api_endpoint", resp.Patterns[0])
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "diff-analyzer", resp.Service)
	assert.Greater(t, resp.Timestamp, 0.0)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Endpoint not found")
}

func TestWrongMethod(t *testing.T) {
	router := newTestRouter(100)

	rec := doRequest(router, http.MethodGet, "/analyze-code", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method not allowed")
}
