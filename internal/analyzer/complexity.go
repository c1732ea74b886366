package analyzer

import (
	"strings"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// Tier weights and decision thresholds for the complexity facet.
const (
	highTierWeight   = 3
	mediumTierWeight = 2
	lowTierWeight    = 1

	highWeightedThreshold   = 10
	mediumWeightedThreshold = 5
	highLineThreshold       = 100
	mediumLineThreshold     = 50
)

// commentPrefixes are the single-line markers recognized by the code-line
// heuristic. Only the line prefix is inspected, so block-comment interiors
// that do not start with "*" still count as code. Known gap, kept for
// behavioral parity with prior versions of the service.
var commentPrefixes = []string{"#", "//", "/*", "*"}

// assessComplexity combines weighted control-structure match counts with a
// raw code-line count. Thresholds are checked in order, first satisfied wins.
func (rs *RuleSet) assessComplexity(text string) string {
	counts := make(map[string]int, len(rs.Complexity))
	for _, tier := range rs.Complexity {
		total := 0
		for _, p := range tier.Patterns {
			total += len(p.FindAllStringIndex(text, -1))
		}
		counts[tier.Name] = total
	}

	weighted := counts[domain.ComplexityHigh]*highTierWeight +
		counts[domain.ComplexityMedium]*mediumTierWeight +
		counts[domain.ComplexityLow]*lowTierWeight

	lines := countCodeLines(text)

	switch {
	case weighted > highWeightedThreshold || lines > highLineThreshold:
		return domain.ComplexityHigh
	case weighted > mediumWeightedThreshold || lines > mediumLineThreshold:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityLow
	}
}

// countCodeLines counts lines that are non-blank and do not start with a
// recognized comment marker.
func countCodeLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if hasCommentPrefix(trimmed) {
			continue
		}
		count++
	}
	return count
}

func hasCommentPrefix(line string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// countNonBlankLines counts lines with any non-whitespace content. Used by
// the confidence estimator.
func countNonBlankLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
