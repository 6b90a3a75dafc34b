// Package cso checks skill descriptions for Claude Search Optimization
// problems, phrasing that prevents a skill from auto-triggering.
package cso

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/internal/validator"
)

const (
	// maxDescriptionLength is the hard limit for descriptions.
	maxDescriptionLength = 1024

	// recommendedDescriptionLength is the soft limit for descriptions.
	recommendedDescriptionLength = 500

	// minDescriptionLength is the length below which a description is
	// probably too vague to match anything.
	minDescriptionLength = 50
)

// pattern pairs a compiled regex with the message reported on a match.
type pattern struct {
	re      *regexp.Regexp
	message string
}

// workflowHints match phrasing that describes HOW a skill works instead
// of WHEN to use it. Matched against the lowercased description.
var workflowHints = []pattern{
	{regexp.MustCompile(`\bruns?\b.*\bcommands?\b`), "mentions running commands (workflow hint)"},
	{regexp.MustCompile(`\bexecutes?\b`), `uses "execute" (workflow hint)`},
	{regexp.MustCompile(`\bdiscover\w*\s+\w*\s*dynamically`), "mentions dynamic discovery (workflow hint)"},
	{regexp.MustCompile(`\bstep\s*\d`), "references steps (workflow hint)"},
	{regexp.MustCompile(`\bworkflow\b`), `uses "workflow" in description`},
	{regexp.MustCompile(`\bprocess\b.*\b(files?|data)\b`), "describes processing (workflow hint)"},
	{regexp.MustCompile(`\bparses?\b`), `uses "parse" (workflow hint)`},
	{regexp.MustCompile(`\banalyzes?\s+and\s+`), "describes analysis process (workflow hint)"},
	{regexp.MustCompile(`\bfirst\b.*\bthen\b`), "sequential process description (workflow hint)"},
	{regexp.MustCompile(`\bby\s+(running|executing|calling)`), "describes how it works"},
}

// firstPerson match first-person phrasing; descriptions are written in
// third person.
var firstPerson = []pattern{
	{regexp.MustCompile(`(?i)\bI\s+(can|will|am|help)\b`), `uses first person "I"`},
	{regexp.MustCompile(`(?i)\bmy\b`), `uses first person "my"`},
	{regexp.MustCompile(`(?i)\bI'm\b`), `uses first person "I'm"`},
	{regexp.MustCompile(`(?i)\bI'll\b`), `uses first person "I'll"`},
}

// goodPatterns match phrasing that helps a description trigger.
var goodPatterns = []pattern{
	{regexp.MustCompile(`(?i)^[A-Z][^.]+\.`), "starts with capability statement"},
	{regexp.MustCompile(`(?i)\buse\s+when\b`), `includes "use when" triggers`},
	{regexp.MustCompile(`(?i)\buser\s+(says?|asks?|provides?|mentions?)\b`), "references user actions"},
	{regexp.MustCompile(`(?i)'[^']+'\s*,?\s*'[^']+'`), "includes example phrases"},
}

// triggerExamples matches two quoted phrases, the form trigger examples
// usually take.
var triggerExamples = regexp.MustCompile(`'[^']+'\s*,?\s*'[^']+'`)

// Analyzer checks descriptions for CSO compliance.
type Analyzer struct{}

// New creates a CSO Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze inspects the skill description.
func (a *Analyzer) Analyze(s *skill.Skill) *validator.Result {
	result := &validator.Result{Skill: s.Name, Analyzer: "cso"}

	if s.Description == "" {
		result.AddError("description", "description", "no description field found", nil)
		return result
	}

	AnalyzeDescription(s.Description, result)
	return result
}

// AnalyzeDescription runs the CSO checks on a description and records
// findings in result.
func AnalyzeDescription(desc string, result *validator.Result) {
	lower := strings.ToLower(desc)

	for _, p := range workflowHints {
		if p.re.MatchString(lower) {
			result.AddError("workflow-hint", "description", p.message, nil)
		}
	}

	for _, p := range firstPerson {
		if p.re.MatchString(desc) {
			result.AddError("first-person", "description", p.message, nil)
		}
	}

	for _, p := range goodPatterns {
		if p.re.MatchString(desc) {
			result.AddInfo("good-pattern", "description", p.message, nil)
		}
	}

	switch {
	case len(desc) > maxDescriptionLength:
		result.AddError("description-length", "description",
			fmt.Sprintf("%d chars (max %d)", len(desc), maxDescriptionLength), nil)
	case len(desc) > recommendedDescriptionLength:
		result.AddWarning("description-length", "description",
			fmt.Sprintf("%d chars (recommend <%d)", len(desc), recommendedDescriptionLength), nil)
	}

	if len(desc) < minDescriptionLength {
		result.AddWarning("description-length", "description", "may be too short/vague", nil)
	}

	if !triggerExamples.MatchString(desc) {
		result.AddWarning("trigger-examples", "description",
			"consider adding example trigger phrases in quotes", nil)
	}
}
