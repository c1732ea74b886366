//nolint:testpackage // Testing internal detectors requires same package access
package analyzer

import (
	"strings"
	"testing"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

func TestAssessComplexity_LineCountAloneTriggersHigh(t *testing.T) {
	rs := NewRuleSet()

	// 120 plain assignments: no control-structure matches, but the line
	// count alone crosses the high threshold.
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = "x = 1"
	}
	body := strings.Join(lines, "\n")

	if got := rs.assessComplexity(body); got != domain.ComplexityHigh {
		t.Errorf("expected high, got %s", got)
	}
}

func TestAssessComplexity_Low(t *testing.T) {
	rs := NewRuleSet()

	if got := rs.assessComplexity("x = 1\ny = 2\n"); got != domain.ComplexityLow {
		t.Errorf("expected low, got %s", got)
	}
}

func TestAssessComplexity_WeightedScoreMedium(t *testing.T) {
	rs := NewRuleSet()

	// Three declaration matches (low tier, weight 1) and two loop matches
	// (medium tier, weight 2): weighted = 3 + 4 = 7 > 5.
	body := `def alpha():
def beta():
def gamma():
for item in rows
while pending
`
	if got := rs.assessComplexity(body); got != domain.ComplexityMedium {
		t.Errorf("expected medium, got %s", got)
	}
}

func TestCountCodeLines_SkipsCommentsAndBlanks(t *testing.T) {
	body := `x = 1

# comment
// comment
/* block start
* block middle
y = 2
`
	if got := countCodeLines(body); got != 2 {
		t.Errorf("expected 2 code lines, got %d", got)
	}
}

func TestCountCodeLines_BlockCommentInteriorCounts(t *testing.T) {
	// Interior block-comment lines that do not start with a marker are
	// counted as code. The heuristic is prefix-only on purpose.
	body := `/* start
this line still counts
*/
`
	if got := countCodeLines(body); got != 1 {
		t.Errorf("expected 1 line (block interior counted), got %d", got)
	}
}
