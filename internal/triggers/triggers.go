// Package triggers measures trigger word coverage in skill descriptions
// and suggests missing terms.
package triggers

import (
	"regexp"
	"strings"

	"github.com/thoreinstein/sklint/internal/skill"
)

// actionWords are generic verbs users lead requests with.
var actionWords = []string{
	"show", "list", "get", "fetch", "create", "make", "build",
	"update", "edit", "delete", "remove", "add", "check", "view",
	"find", "search", "analyze", "run", "execute", "start", "stop",
}

// questionWords are question and request openers.
var questionWords = []string{
	"what is", "how do", "how to", "where is", "why", "when",
	"can you", "could you", "please", "help me", "i need",
}

// domain names a vocabulary of terms for one problem area.
type domain struct {
	name  string
	terms []string
}

// domains are checked only when at least one term already appears, so a
// git skill is not asked to mention kubernetes.
var domains = []domain{
	{"github", []string{"github", "repo", "repository", "issue", "pr", "pull request",
		"commit", "branch", "fork", "clone", "star", "release"}},
	{"documentation", []string{"docs", "documentation", "api", "reference", "guide",
		"tutorial", "how to use", "example"}},
	{"testing", []string{"test", "tests", "testing", "spec", "coverage", "tdd",
		"unit test", "integration"}},
	{"devops", []string{"deploy", "deployment", "ci", "cd", "pipeline", "docker",
		"kubernetes", "k8s", "terraform", "aws", "cloud"}},
	{"database", []string{"database", "db", "sql", "query", "schema", "migration",
		"table", "index"}},
	{"ui", []string{"ui", "ux", "design", "component", "page", "form", "button",
		"layout", "style", "css"}},
}

// maxMissing caps how many missing terms are suggested per category.
const maxMissing = 5

var quotedExamples = regexp.MustCompile(`'[^']+'\s*,?\s*'[^']+'`)

// Category is the coverage result for one trigger vocabulary.
type Category struct {
	Name     string   `json:"name"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing,omitempty"`
	Coverage float64  `json:"coverage"`
}

// Report is the trigger coverage analysis for one skill.
type Report struct {
	Skill       string     `json:"skill"`
	Categories  []Category `json:"categories"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

// Analyzer measures trigger coverage.
type Analyzer struct{}

// New creates a triggers Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze computes trigger coverage for the skill description.
func (a *Analyzer) Analyze(s *skill.Skill) *Report {
	return analyzeDescription(s.Name, s.Description)
}

func analyzeDescription(name, desc string) *Report {
	report := &Report{Skill: name}
	lower := strings.ToLower(desc)

	actions := Category{
		Name:     "actions",
		Found:    findTerms(lower, actionWords),
		Missing:  missingTerms(lower, actionWords),
		Coverage: coverage(lower, actionWords),
	}
	report.Categories = append(report.Categories, actions)

	questions := Category{
		Name:     "questions",
		Found:    findTerms(lower, questionWords),
		Coverage: coverage(lower, questionWords),
	}
	report.Categories = append(report.Categories, questions)

	for _, d := range domains {
		found := findTerms(lower, d.terms)
		if len(found) == 0 {
			continue
		}
		report.Categories = append(report.Categories, Category{
			Name:     d.name,
			Found:    found,
			Missing:  missingTerms(lower, d.terms),
			Coverage: coverage(lower, d.terms),
		})
	}

	if actions.Coverage < 0.1 {
		report.Suggestions = append(report.Suggestions,
			"Add action verbs: 'show', 'list', 'create', 'analyze'")
	}
	if len(questions.Found) == 0 {
		report.Suggestions = append(report.Suggestions,
			"Consider question phrases: 'how do I', 'what is'")
	}
	if !quotedExamples.MatchString(desc) {
		report.Suggestions = append(report.Suggestions,
			"Add quoted example phrases users might say")
	}

	return report
}

// findTerms returns the terms that appear as substrings of lower.
func findTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// missingTerms returns up to maxMissing terms absent from lower.
func missingTerms(lower string, terms []string) []string {
	var missing []string
	for _, term := range terms {
		if !strings.Contains(lower, term) {
			missing = append(missing, term)
			if len(missing) == maxMissing {
				break
			}
		}
	}
	return missing
}

func coverage(lower string, terms []string) float64 {
	return float64(len(findTerms(lower, terms))) / float64(len(terms))
}
