package analyzer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/telemetry"
)

// Analyzer runs every facet detector over a diff and assembles the result.
// It holds only the compiled rule tables, so a single instance is safe for
// concurrent use across requests.
type Analyzer struct {
	rules     *RuleSet
	logger    logging.Logger
	telemetry *telemetry.Provider
}

// New creates an analyzer with freshly compiled rule tables.
func New(logger logging.Logger, tp *telemetry.Provider) *Analyzer {
	a := &Analyzer{
		rules:     NewRuleSet(),
		logger:    logger,
		telemetry: tp,
	}

	logger.Info("analyzer initialized",
		logging.Int("languages", len(a.rules.Languages)),
		logging.Int("code_types", len(a.rules.CodeTypes)),
		logging.Int("functionality_groups", len(a.rules.Functionality)),
	)

	return a
}

// Rules exposes the read-only rule tables for the metadata endpoints.
func (a *Analyzer) Rules() *RuleSet {
	return a.rules
}

// Analyze classifies one diff. It is a pure function of its input: no I/O,
// no mutable state beyond the read-only tables, and it never fails on
// well-formed input — absence of matches is a valid outcome, not an error.
//
// FullDiff is accepted but not folded into the scoring text. That mirrors
// the historical behavior of the service; see DESIGN.md.
func (a *Analyzer) Analyze(ctx context.Context, diff *domain.DiffInput) (*domain.AnalysisResult, error) {
	start := time.Now()

	if a.telemetry != nil {
		var span trace.Span
		ctx, span = a.telemetry.StartSpan(ctx, "analyzer.Analyze")
		defer span.End()
	}

	text := diff.AddedCode + "\n" + diff.DeletedCode

	lang := a.rules.detectLanguage(diff.FileName, text)
	codeType := a.rules.detectCodeType(text)
	patterns := a.rules.detectPatterns(text)
	complexity := a.rules.assessComplexity(text)
	functionality := a.rules.analyzeFunctionality(text, diff.FileName, lang)
	confidence := scoreConfidence(lang, codeType, patterns, text)
	summary := renderSummary(lang, functionality, complexity, patterns, diff.LinesAdded, diff.LinesDeleted)

	result := &domain.AnalysisResult{
		Language:      lang.String(),
		CodeType:      codeType.String(),
		Functionality: functionality,
		Complexity:    complexity,
		Patterns:      patterns,
		Confidence:    confidence,
		Summary:       summary,
	}

	duration := time.Since(start)
	if a.telemetry != nil {
		a.telemetry.RecordAnalysis(ctx, duration, result.Language)
	}

	a.logger.Debug("diff analyzed",
		logging.String("file_name", diff.FileName),
		logging.String("language", result.Language),
		logging.String("code_type", result.CodeType),
		logging.String("complexity", result.Complexity),
		logging.Float64("confidence", result.Confidence),
		logging.Duration("duration", duration),
	)

	return result, nil
}
