package analyzer

import (
	"fmt"
	"strings"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

// At most three pattern names are mentioned in the summary sentence.
const summaryPatternLimit = 3

// renderSummary formats the facet outcomes and the change size into a single
// sentence. Clause order and punctuation are fixed; golden-output tests
// depend on the exact string.
func renderSummary(lang domain.Language, functionality, complexity string, patterns []string, linesAdded, linesDeleted int) string {
	var changeDesc string
	switch {
	case linesAdded > 0 && linesDeleted > 0:
		changeDesc = fmt.Sprintf("Modified code (+%d/-%d lines)", linesAdded, linesDeleted)
	case linesAdded > 0:
		changeDesc = fmt.Sprintf("Added %d lines of code", linesAdded)
	case linesDeleted > 0:
		changeDesc = fmt.Sprintf("Removed %d lines of code", linesDeleted)
	default:
		changeDesc = "Code structure changes"
	}

	var sb strings.Builder
	sb.WriteString(changeDesc)
	sb.WriteString(" in ")
	sb.WriteString(titleCaser.String(lang.String()))
	sb.WriteString(" for ")
	sb.WriteString(strings.ToLower(functionality))

	if len(patterns) > 0 {
		top := patterns
		if len(top) > summaryPatternLimit {
			top = top[:summaryPatternLimit]
		}
		if len(top) > 2 {
			sb.WriteString(" with ")
			sb.WriteString(strings.Join(top[:2], ", "))
			sb.WriteString(" and ")
			sb.WriteString(top[2])
		} else {
			sb.WriteString(" with ")
			sb.WriteString(strings.Join(top, ", "))
		}
	}

	sb.WriteString(". Code complexity is ")
	sb.WriteString(complexity)
	sb.WriteString(".")

	return sb.String()
}
