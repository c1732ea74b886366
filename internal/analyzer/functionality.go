package analyzer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// A keyword found in the file name is a stronger signal than body mentions.
const fileNameKeywordScore = 3

var titleCaser = cases.Title(language.Und)

// analyzeFunctionality scores each functionality category by whole-word
// keyword occurrences in the lowercased text, plus a file-name bonus per
// keyword. The winning category is rendered as a title-cased phrase.
// The detected language does not participate in scoring yet; it stays in
// the signature so a per-language weighting can slot in without touching
// callers.
func (rs *RuleSet) analyzeFunctionality(text, fileName string, _ domain.Language) string {
	textLower := strings.ToLower(text)
	fileLower := strings.ToLower(fileName)

	// Prefilter: one automaton pass tells us which keywords appear as
	// substrings anywhere in the body. Whole-word counting below only runs
	// for those, since a keyword absent as a substring cannot match \b-bound.
	// Keyed by string, not table position: "process" owns two table entries
	// but the matcher reports a single index for it.
	present := make(map[string]bool, len(rs.kwFlat))
	for _, hit := range rs.kwMatcher.Match([]byte(textLower)) {
		if hit < len(rs.kwFlat) {
			present[rs.kwFlat[hit]] = true
		}
	}

	bestName := ""
	bestScore := 0

	for _, group := range rs.Functionality {
		score := 0
		for ki, kw := range group.Keywords {
			if present[kw] {
				score += len(group.wordPatterns[ki].FindAllStringIndex(textLower, -1))
			}
			if strings.Contains(fileLower, kw) {
				score += fileNameKeywordScore
			}
		}
		if score > bestScore {
			bestScore = score
			bestName = group.Name
		}
	}

	if bestScore == 0 {
		return domain.FunctionalityGeneral
	}

	return titleCaser.String(strings.ReplaceAll(bestName, "_", " "))
}
