//nolint:testpackage // Testing internal detectors requires same package access
package analyzer

import (
	"testing"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
)

func TestRenderSummary_Added(t *testing.T) {
	got := renderSummary(domain.DetectedLanguage("python"), "Testing", domain.ComplexityLow, nil, 10, 0)
	want := "Added 10 lines of code in Python for testing. Code complexity is low."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSummary_Modified(t *testing.T) {
	got := renderSummary(domain.DetectedLanguage("go"), "Database", domain.ComplexityMedium,
		[]string{"error_handling"}, 12, 4)
	want := "Modified code (+12/-4 lines) in Go for database with error_handling. Code complexity is medium."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSummary_Removed(t *testing.T) {
	got := renderSummary(domain.DetectedLanguage("java"), "General", domain.ComplexityLow, nil, 0, 7)
	want := "Removed 7 lines of code in Java for general. Code complexity is low."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSummary_NoLineCounts(t *testing.T) {
	got := renderSummary(domain.Language{}, "General", domain.ComplexityLow, nil, 0, 0)
	want := "Code structure changes in Unknown for general. Code complexity is low."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSummary_PatternListTruncatedToThree(t *testing.T) {
	patterns := []string{"logging", "error_handling", "security", "performance", "test_code"}

	got := renderSummary(domain.DetectedLanguage("python"), "Api", domain.ComplexityHigh, patterns, 30, 2)
	want := "Modified code (+30/-2 lines) in Python for api with logging, error_handling and security. Code complexity is high."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSummary_TwoPatternsUseComma(t *testing.T) {
	got := renderSummary(domain.DetectedLanguage("ruby"), "Testing", domain.ComplexityLow,
		[]string{"test_code", "logging"}, 5, 0)
	want := "Added 5 lines of code in Ruby for testing with test_code, logging. Code complexity is low."

	if got != want {
		t.Errorf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}
