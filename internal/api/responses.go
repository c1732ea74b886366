package api

import (
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// AnalyzeRequest is the body of a single analysis request.
type AnalyzeRequest struct {
	FileName     string `json:"fileName"`
	AddedCode    string `json:"addedCode"`
	DeletedCode  string `json:"deletedCode"`
	FullDiff     string `json:"fullDiff"`
	LinesAdded   int    `json:"linesAdded"`
	LinesDeleted int    `json:"linesDeleted"`
}

// Diff converts the request into the engine's input type.
func (r *AnalyzeRequest) Diff() *domain.DiffInput {
	return &domain.DiffInput{
		FileName:     r.FileName,
		AddedCode:    r.AddedCode,
		DeletedCode:  r.DeletedCode,
		FullDiff:     r.FullDiff,
		LinesAdded:   r.LinesAdded,
		LinesDeleted: r.LinesDeleted,
	}
}

// BatchAnalyzeRequest is the body of a batch analysis request.
type BatchAnalyzeRequest struct {
	Files []*domain.DiffInput `json:"files"`
}

// BatchResultItem is a successful batch element: the flat AnalysisResult
// fields plus the file name.
type BatchResultItem struct {
	domain.AnalysisResult
	FileName string `json:"fileName"`
}

// BatchErrorItem is a failed batch element.
type BatchErrorItem struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

// BatchAnalyzeResponse is the batch response envelope. Each element is
// either a BatchResultItem or a BatchErrorItem, in request order.
type BatchAnalyzeResponse struct {
	Results []any `json:"results"`
}

// LanguagesResponse lists the recognized language names.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
	Total     int      `json:"total"`
}

// PatternsResponse lists the recognized code-type / pattern category names.
type PatternsResponse struct {
	Patterns []string `json:"patterns"`
	Total    int      `json:"total"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
	Service   string  `json:"service"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// batchItemResponse maps a processor outcome to its response element.
func batchItemResponse(fileName string, result *domain.AnalysisResult, err error) any {
	if err != nil {
		return BatchErrorItem{
			FileName: fileName,
			Error:    err.Error(),
		}
	}
	return BatchResultItem{
		AnalysisResult: *result,
		FileName:       fileName,
	}
}
