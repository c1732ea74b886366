package analyzer

import (
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// detectCodeType scores every code-type group by counting non-overlapping
// occurrences of each of its patterns in the text. Occurrence counting
// rewards dominance, unlike the presence test used for language detection.
// Ties resolve to the first group in table order; zero everywhere means no
// detected type.
func (rs *RuleSet) detectCodeType(text string) domain.CodeType {
	best := domain.CodeType{}
	bestScore := 0

	for _, group := range rs.CodeTypes {
		score := 0
		for _, p := range group.Patterns {
			score += len(p.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			bestScore = score
			best = domain.DetectedCodeType(group.Name)
		}
	}

	return best
}

// detectPatterns reports which code-type categories are present at all,
// in table order with no duplicates. A category is recorded as soon as any
// of its patterns matches; this is a separate path from detectCodeType on
// purpose, since presence differs from dominance.
func (rs *RuleSet) detectPatterns(text string) []string {
	detected := make([]string, 0, len(rs.CodeTypes))

	for _, group := range rs.CodeTypes {
		for _, p := range group.Patterns {
			if p.MatchString(text) {
				detected = append(detected, group.Name)
				break
			}
		}
	}

	return detected
}
