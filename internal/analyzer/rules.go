// Package analyzer implements the heuristic classification engine for
// source-code diffs. All matching is plain text pattern search; there is no
// syntax-aware parsing.
package analyzer

import (
	"regexp"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// PatternGroup pairs a category name with its ordered list of compiled
// patterns. Slice order is the table-definition order and drives
// deterministic tie-breaking, so groups live in slices rather than maps.
type PatternGroup struct {
	Name     string
	Patterns []*regexp.Regexp
}

// KeywordGroup pairs a functionality category with its plain keyword tokens.
// Word patterns are the compiled whole-word matchers for each keyword.
type KeywordGroup struct {
	Name         string
	Keywords     []string
	wordPatterns []*regexp.Regexp
}

// RuleSet holds every rule table. It is built once at process start and is
// read-only afterwards, so a single instance is safe to share across
// concurrent requests.
type RuleSet struct {
	Languages     []PatternGroup
	CodeTypes     []PatternGroup
	Complexity    []PatternGroup // high, medium, low — in that order
	Functionality []KeywordGroup

	// Aho-Corasick prefilter over every functionality keyword. A keyword
	// that never appears as a substring cannot match whole-word either, so
	// occurrence counting is skipped for it. Presence is keyed by keyword
	// string: the same token can belong to several groups ("process" is in
	// both data_processing and business_logic), and the matcher reports one
	// index per distinct string, not per table entry.
	kwMatcher *ahocorasick.Matcher
	kwFlat    []string
}

// re compiles a pattern case-insensitively in multi-line mode. MustCompile
// makes a malformed table entry fatal at construction, not at call time.
func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?im)" + pattern)
}

// NewRuleSet compiles the full set of rule tables.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{
		Languages: []PatternGroup{
			{Name: "python", Patterns: []*regexp.Regexp{
				re(`\.py$`), re(`import\s+\w+`), re(`def\s+\w+`), re(`class\s+\w+`),
				re(`if\s+__name__\s*==\s*["']__main__["']`),
			}},
			{Name: "java", Patterns: []*regexp.Regexp{
				re(`\.java$`), re(`public\s+class`), re(`import\s+[\w.]+;`),
				re(`public\s+static\s+void\s+main`), re(`@\w+`),
			}},
			{Name: "javascript", Patterns: []*regexp.Regexp{
				re(`\.js$`), re(`function\s+\w+`), re(`const\s+\w+`), re(`let\s+\w+`),
				re(`var\s+\w+`), re(`=>`),
			}},
			{Name: "typescript", Patterns: []*regexp.Regexp{
				re(`\.ts$`), re(`interface\s+\w+`), re(`type\s+\w+`), re(`:\s*\w+`), re(`export\s+`),
			}},
			{Name: "c++", Patterns: []*regexp.Regexp{
				re(`\.(cpp|cc|cxx)$`), re(`#include\s*<`), re(`using\s+namespace`),
				re(`std::`), re(`int\s+main`),
			}},
			{Name: "c", Patterns: []*regexp.Regexp{
				re(`\.c$`), re(`#include\s*<`), re(`int\s+main`), re(`printf\s*\(`), re(`malloc\s*\(`),
			}},
			{Name: "html", Patterns: []*regexp.Regexp{
				re(`\.html?$`), re(`<html>`), re(`<div`), re(`<span`), re(`<!DOCTYPE`),
			}},
			{Name: "css", Patterns: []*regexp.Regexp{
				re(`\.css$`), re(`\{[^}]*\}`), re(`@media`), re(`#\w+`), re(`\.\w+`),
			}},
			{Name: "sql", Patterns: []*regexp.Regexp{
				re(`\.sql$`), re(`SELECT\s+`), re(`INSERT\s+`), re(`UPDATE\s+`),
				re(`DELETE\s+`), re(`CREATE\s+TABLE`),
			}},
			{Name: "shell", Patterns: []*regexp.Regexp{
				re(`\.sh$`), re(`#!/bin/bash`), re(`#!/bin/sh`), re(`echo\s+`), re(`grep\s+`),
			}},
			{Name: "go", Patterns: []*regexp.Regexp{
				re(`\.go$`), re(`package\s+\w+`), re(`import\s+\(`), re(`func\s+\w+`), re(`go\s+\w+`),
			}},
			{Name: "rust", Patterns: []*regexp.Regexp{
				re(`\.rs$`), re(`fn\s+\w+`), re(`let\s+\w+`), re(`struct\s+\w+`), re(`impl\s+`),
			}},
			{Name: "php", Patterns: []*regexp.Regexp{
				re(`\.php$`), re(`<\?php`), re(`\$\w+`), re(`function\s+\w+`), re(`class\s+\w+`),
			}},
			{Name: "ruby", Patterns: []*regexp.Regexp{
				re(`\.rb$`), re(`def\s+\w+`), re(`class\s+\w+`), re(`require\s+`), re(`puts\s+`),
			}},
			{Name: "swift", Patterns: []*regexp.Regexp{
				re(`\.swift$`), re(`func\s+\w+`), re(`var\s+\w+`), re(`let\s+\w+`), re(`class\s+\w+`),
			}},
			{Name: "kotlin", Patterns: []*regexp.Regexp{
				re(`\.kt$`), re(`fun\s+\w+`), re(`val\s+\w+`), re(`var\s+\w+`), re(`class\s+\w+`),
			}},
		},
		CodeTypes: []PatternGroup{
			{Name: "api_endpoint", Patterns: []*regexp.Regexp{
				re(`@app\.route`), re(`@RequestMapping`),
				re(`app\.(get|post|put|delete)`), re(`router\.(get|post|put|delete)`),
			}},
			{Name: "database_query", Patterns: []*regexp.Regexp{
				re(`SELECT\s+.*FROM`), re(`INSERT\s+INTO`), re(`UPDATE\s+.*SET`),
				re(`DELETE\s+FROM`), re(`\.find\(`), re(`\.save\(`),
			}},
			{Name: "test_code", Patterns: []*regexp.Regexp{
				re(`def\s+test_`), re(`@Test`), re(`it\(.*should`), re(`describe\(`),
				re(`assert`), re(`expect\(`),
			}},
			{Name: "configuration", Patterns: []*regexp.Regexp{
				re(`\.properties$`), re(`\.yaml$`), re(`\.yml$`), re(`\.json$`),
				re(`\.xml$`), re(`config`),
			}},
			{Name: "authentication", Patterns: []*regexp.Regexp{
				re(`login`), re(`password`), re(`token`), re(`auth`), re(`jwt`), re(`oauth`),
			}},
			{Name: "error_handling", Patterns: []*regexp.Regexp{
				re(`try\s*:`), re(`catch\s*\(`), re(`except\s*:`), re(`throw\s+`), re(`raise\s+`),
			}},
			{Name: "logging", Patterns: []*regexp.Regexp{
				re(`console\.log`), re(`print\(`), re(`logger\.`), re(`log\.`), re(`System\.out`),
			}},
			{Name: "async_code", Patterns: []*regexp.Regexp{
				re(`async\s+def`), re(`await\s+`), re(`Promise\s*<`), re(`CompletableFuture`),
			}},
			{Name: "ui_component", Patterns: []*regexp.Regexp{
				re(`<div`), re(`<span`), re(`<button`), re(`class\s*=`), re(`id\s*=`), re(`render\s*\(`),
			}},
			{Name: "data_processing", Patterns: []*regexp.Regexp{
				re(`map\s*\(`), re(`filter\s*\(`), re(`reduce\s*\(`), re(`for\s+.*in\s+`), re(`\.stream\(\)`),
			}},
			{Name: "security", Patterns: []*regexp.Regexp{
				re(`encrypt`), re(`decrypt`), re(`hash`), re(`ssl`), re(`https`), re(`certificate`),
			}},
			{Name: "performance", Patterns: []*regexp.Regexp{
				re(`cache`), re(`optimize`), re(`performance`), re(`benchmark`), re(`profile`),
			}},
			{Name: "refactoring", Patterns: []*regexp.Regexp{
				re(`TODO`), re(`FIXME`), re(`deprecated`), re(`@Deprecated`), re(`# TODO`),
			}},
		},
		Complexity: []PatternGroup{
			{Name: "high", Patterns: []*regexp.Regexp{
				re(`for\s+.*for\s+`), re(`while\s+.*while\s+`), re(`if\s+.*if\s+.*if\s+`),
				re(`try\s+.*except\s+.*except\s+`), re(`switch\s+.*case\s+.*case\s+.*case\s+`),
			}},
			{Name: "medium", Patterns: []*regexp.Regexp{
				re(`for\s+.*in\s+`), re(`while\s+`), re(`if\s+.*else\s+`), re(`try\s+.*except\s+`),
				re(`switch\s+.*case\s+`), re(`class\s+.*extends\s+`),
			}},
			{Name: "low", Patterns: []*regexp.Regexp{
				re(`def\s+\w+`), re(`function\s+\w+`), re(`var\s+\w+`), re(`let\s+\w+`), re(`const\s+\w+`),
			}},
		},
		Functionality: []KeywordGroup{
			{Name: "authentication", Keywords: []string{"login", "password", "auth", "token", "session", "jwt"}},
			{Name: "database", Keywords: []string{"query", "select", "insert", "update", "delete", "database", "sql"}},
			{Name: "api", Keywords: []string{"endpoint", "route", "request", "response", "api", "rest"}},
			{Name: "ui", Keywords: []string{"component", "render", "view", "template", "html", "css"}},
			{Name: "testing", Keywords: []string{"test", "assert", "expect", "mock", "unittest"}},
			{Name: "configuration", Keywords: []string{"config", "settings", "properties", "environment"}},
			{Name: "data_processing", Keywords: []string{"process", "transform", "parse", "convert", "filter"}},
			{Name: "utility", Keywords: []string{"helper", "util", "common", "shared", "library"}},
			{Name: "business_logic", Keywords: []string{"calculate", "validate", "process", "handle", "manage"}},
			{Name: "integration", Keywords: []string{"connect", "integrate", "sync", "import", "export"}},
		},
	}

	rs.compileKeywords()
	return rs
}

// compileKeywords builds the whole-word matchers and the Aho-Corasick
// prefilter automaton for the functionality tables.
func (rs *RuleSet) compileKeywords() {
	for gi := range rs.Functionality {
		group := &rs.Functionality[gi]
		group.wordPatterns = make([]*regexp.Regexp, len(group.Keywords))
		for ki, kw := range group.Keywords {
			group.wordPatterns[ki] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			rs.kwFlat = append(rs.kwFlat, kw)
		}
	}
	rs.kwMatcher = ahocorasick.NewStringMatcher(rs.kwFlat)
}

// LanguageNames returns the recognized language names in table order.
func (rs *RuleSet) LanguageNames() []string {
	names := make([]string, len(rs.Languages))
	for i, g := range rs.Languages {
		names[i] = g.Name
	}
	return names
}

// CodeTypeNames returns the recognized code-type names in table order.
func (rs *RuleSet) CodeTypeNames() []string {
	names := make([]string, len(rs.CodeTypes))
	for i, g := range rs.CodeTypes {
		names[i] = g.Name
	}
	return names
}
