// Package domain defines the core types shared between the analyzer engine
// and the HTTP transport.
package domain

// Fallback sentinels rendered at the output boundary when a facet detector
// finds no matches.
const (
	LanguageUnknown      = "unknown"
	CodeTypeGeneral      = "general_code"
	FunctionalityGeneral = "General Purpose Code"
)

// Complexity tiers.
const (
	ComplexityHigh   = "high"
	ComplexityMedium = "medium"
	ComplexityLow    = "low"
)

// DiffInput is a single unit of source-code change to classify.
// Exactly one of AddedCode, DeletedCode, FullDiff must be non-empty for the
// request to be valid; the transport enforces this before the engine runs.
type DiffInput struct {
	FileName     string `json:"fileName"`
	AddedCode    string `json:"addedCode"`
	DeletedCode  string `json:"deletedCode"`
	FullDiff     string `json:"fullDiff"`
	LinesAdded   int    `json:"linesAdded"`
	LinesDeleted int    `json:"linesDeleted"`
}

// Language is the outcome of language detection. The zero value is the
// unknown language; sentinel strings are rendered only when serializing.
type Language struct {
	Name  string
	Known bool
}

// DetectedLanguage wraps a known language name.
func DetectedLanguage(name string) Language {
	return Language{Name: name, Known: true}
}

// String renders the language name, or the unknown sentinel.
func (l Language) String() string {
	if l.Known {
		return l.Name
	}
	return LanguageUnknown
}

// CodeType is the outcome of code-type detection. The zero value means no
// category matched.
type CodeType struct {
	Name  string
	Known bool
}

// DetectedCodeType wraps a known code-type name.
func DetectedCodeType(name string) CodeType {
	return CodeType{Name: name, Known: true}
}

// String renders the code-type name, or the general-code sentinel.
func (c CodeType) String() string {
	if c.Known {
		return c.Name
	}
	return CodeTypeGeneral
}

// AnalysisResult is the structured classification of one diff. It is the
// flat object returned by the transport.
type AnalysisResult struct {
	Language      string   `json:"language"`
	CodeType      string   `json:"codeType"`
	Functionality string   `json:"functionality"`
	Complexity    string   `json:"complexity"`
	Patterns      []string `json:"patterns"`
	Confidence    float64  `json:"confidence"`
	Summary       string   `json:"summary"`
}
