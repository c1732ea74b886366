package analyzer

import (
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// Confidence contributions. Each signal adds independently; the sum is
// capped at 1.0.
const (
	languageConfidence     = 0.3
	codeTypeConfidence     = 0.2
	perPatternConfidence   = 0.1
	maxPatternConfidence   = 0.3
	lineCountConfidence    = 0.1
	shortBodyLineThreshold = 5
	longBodyLineThreshold  = 20
)

// scoreConfidence derives a bounded confidence score from the facet
// outcomes and the size of the input text.
func scoreConfidence(lang domain.Language, codeType domain.CodeType, patterns []string, text string) float64 {
	confidence := 0.0

	if lang.Known {
		confidence += languageConfidence
	}
	if codeType.Known {
		confidence += codeTypeConfidence
	}
	if len(patterns) > 0 {
		patternBoost := float64(len(patterns)) * perPatternConfidence
		if patternBoost > maxPatternConfidence {
			patternBoost = maxPatternConfidence
		}
		confidence += patternBoost
	}

	lines := countNonBlankLines(text)
	if lines > shortBodyLineThreshold {
		confidence += lineCountConfidence
	}
	if lines > longBodyLineThreshold {
		confidence += lineCountConfidence
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
