package analyzer

import (
	"strings"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// File-name matches outweigh body matches: an extension hit alone should win
// over scattered keyword noise.
const fileNameMatchScore = 3

// detectLanguage scores every language group against the file name and the
// combined diff text. Each pattern contributes at most once per check
// (presence, not occurrence count). The first group in table order with the
// highest positive score wins; an all-zero board is Unknown.
func (rs *RuleSet) detectLanguage(fileName, text string) domain.Language {
	fileNameLower := strings.ToLower(fileName)

	best := domain.Language{}
	bestScore := 0

	for _, group := range rs.Languages {
		score := 0
		for _, p := range group.Patterns {
			if p.MatchString(fileNameLower) {
				score += fileNameMatchScore
			}
			if p.MatchString(text) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = domain.DetectedLanguage(group.Name)
		}
	}

	return best
}
